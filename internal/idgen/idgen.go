// Package idgen generates team codes, ticket identifiers and temporary
// passwords.
package idgen

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// TeamCodePrefix starts every team code printed on an entry pass.
	TeamCodePrefix = "HF26"

	teamCodeRandLen = 6
	tempPasswordLen = 10

	codeCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// TeamCode returns a fresh code of the form HF26XXXXXX where X is an
// uppercase letter or digit.
func TeamCode() string {
	return TeamCodePrefix + randomFrom(codeCharset, teamCodeRandLen)
}

// TicketID returns a short ticket identifier: the first eight hex characters
// of a UUIDv4, uppercased.
func TicketID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// TempPassword returns a one-time member password. Ambiguous characters
// (0/O, 1/l/I) are excluded since passes are read off paper.
func TempPassword() string {
	return randomFrom(passwordCharset, tempPasswordLen)
}

func randomFrom(charset string, n int) string {
	max := big.NewInt(int64(len(charset)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure is not recoverable
		}
		b.WriteByte(charset[idx.Int64()])
	}
	return b.String()
}
