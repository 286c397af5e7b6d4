package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^HF26[A-Z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		code := TeamCode()
		require.Regexp(t, re, code)
	}
}

func TestTeamCodeUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := TeamCode()
		_, dup := seen[code]
		require.False(t, dup, "duplicate team code %s after %d draws", code, i)
		seen[code] = struct{}{}
	}
}

func TestTicketIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-F]{8}$`)
	for i := 0; i < 100; i++ {
		require.Regexp(t, re, TicketID())
	}
}

func TestTempPassword(t *testing.T) {
	for i := 0; i < 100; i++ {
		pw := TempPassword()
		require.Len(t, pw, 10)
		for _, r := range pw {
			require.Contains(t, passwordCharset, string(r))
		}
	}
}
