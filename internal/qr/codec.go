// Package qr implements the entry-pass QR payload codec and image rendering.
//
// A payload is the compact JSON of the ticket fields, signed with HMAC-SHA256
// and then encrypted as a whole into a Fernet token. Scanners send the token
// back verbatim; anything that fails to decrypt, parse or verify is treated
// as forged.
package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
)

// ErrSignature marks a payload that decrypted fine but failed HMAC
// verification. Decode wraps it together with entities.ErrBadPayload.
var ErrSignature = errors.New("signature mismatch")

// Payload is the plaintext carried inside an encrypted QR token. Signature
// covers the JSON encoding of the other four fields.
type Payload struct {
	TicketID  string `json:"ticket_id"`
	TeamCode  string `json:"team_code"`
	TeamName  string `json:"team_name"`
	IssuedAt  int64  `json:"issued_at"`
	Signature string `json:"signature,omitempty"`
}

// Codec encodes and decodes QR payload tokens.
type Codec struct {
	signer *security.Signer
	cipher *security.Cipher
}

func NewCodec(cfg config.SecurityConfig) (*Codec, error) {
	cipher, err := security.NewCipher(cfg.FernetKey)
	if err != nil {
		return nil, err
	}
	return &Codec{
		signer: security.NewSigner(cfg.HMACSecret),
		cipher: cipher,
	}, nil
}

// Encode signs and encrypts the ticket fields into an opaque token string.
func (c *Codec) Encode(ticketID, teamCode, teamName string, issuedAt time.Time) (string, error) {
	p := Payload{
		TicketID: ticketID,
		TeamCode: teamCode,
		TeamName: teamName,
		IssuedAt: issuedAt.Unix(),
	}
	unsigned, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal qr payload: %w", err)
	}
	p.Signature = c.signer.Sign(unsigned)

	signed, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal qr payload: %w", err)
	}
	token, err := c.cipher.Encrypt(signed)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// Decode decrypts a token and verifies its signature. Any failure comes back
// as entities.ErrBadPayload; callers only need to know the code is not ours.
func (c *Codec) Decode(token string) (*Payload, error) {
	plain, err := c.cipher.Decrypt([]byte(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrBadPayload, err)
	}
	var p Payload
	if err := json.Unmarshal(plain, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrBadPayload, err)
	}

	sig := p.Signature
	p.Signature = ""
	unsigned, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}
	if !c.signer.Verify(unsigned, sig) {
		return nil, fmt.Errorf("%w: %w", entities.ErrBadPayload, ErrSignature)
	}
	p.Signature = sig
	return &p, nil
}
