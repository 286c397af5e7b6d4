package security

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrDecrypt is returned when a Fernet token fails to verify or decrypt.
var ErrDecrypt = errors.New("fernet token invalid")

// Cipher encrypts and decrypts byte payloads with a single Fernet key.
type Cipher struct {
	key *fernet.Key
}

// NewCipher parses a base64-encoded 32-byte Fernet key.
func NewCipher(encodedKey string) (*Cipher, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode fernet key: %w", err)
	}
	return &Cipher{key: key}, nil
}

func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	token, err := fernet.EncryptAndSign(plaintext, c.key)
	if err != nil {
		return nil, fmt.Errorf("fernet encrypt: %w", err)
	}
	return token, nil
}

// Decrypt verifies and decrypts a Fernet token. Tokens never expire; the
// store re-reads files that may be arbitrarily old.
func (c *Cipher) Decrypt(token []byte) ([]byte, error) {
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{c.key})
	if plaintext == nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
