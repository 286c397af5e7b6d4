package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer produces and verifies HMAC-SHA256 signatures encoded as lowercase
// hex.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks sig against the signature of data in constant time.
func (s *Signer) Verify(data []byte, sig string) bool {
	expected := s.Sign(data)
	return hmac.Equal([]byte(expected), []byte(sig))
}
