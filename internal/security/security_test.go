package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testFernetKey = "ZmVybmV0LWtleS1mb3ItZXZlbnQtdGlja2V0aW5nPT0="

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("hackfest-2k26")
	require.NoError(t, err)
	require.NotEqual(t, "hackfest-2k26", hash)

	require.True(t, h.Check("hackfest-2k26", hash))
	require.False(t, h.Check("wrong", hash))
	require.False(t, h.Check("hackfest-2k26", "not-a-bcrypt-hash"))
}

func TestHasherCostClamped(t *testing.T) {
	h := NewHasher(99)
	_, err := h.Hash("pw")
	require.NoError(t, err)
}

func TestSignerVerify(t *testing.T) {
	s := NewSigner("hmac-secret")
	data := []byte(`{"ticket_id":"3F2A9B1C"}`)

	sig := s.Sign(data)
	require.Len(t, sig, 64)
	require.True(t, s.Verify(data, sig))
	require.False(t, s.Verify([]byte(`{"ticket_id":"TAMPERED"}`), sig))
	require.False(t, s.Verify(data, "deadbeef"))

	other := NewSigner("other-secret")
	require.False(t, other.Verify(data, sig))
}

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher(testFernetKey)
	require.NoError(t, err)

	token, err := c.Encrypt([]byte("attack at dawn"))
	require.NoError(t, err)
	require.NotContains(t, string(token), "attack")

	plain, err := c.Decrypt(token)
	require.NoError(t, err)
	require.Equal(t, []byte("attack at dawn"), plain)
}

func TestCipherRejectsGarbage(t *testing.T) {
	c, err := NewCipher(testFernetKey)
	require.NoError(t, err)

	_, err = c.Decrypt([]byte("not-a-fernet-token"))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestCipherRejectsWrongKey(t *testing.T) {
	c1, err := NewCipher(testFernetKey)
	require.NoError(t, err)
	c2, err := NewCipher("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
	require.NoError(t, err)

	token, err := c1.Encrypt([]byte("payload"))
	require.NoError(t, err)

	_, err = c2.Decrypt(token)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestNewCipherBadKey(t *testing.T) {
	_, err := NewCipher("too-short")
	require.Error(t, err)
}

func TestTokensRoundTrip(t *testing.T) {
	tk := NewTokens("jwt-secret", time.Hour)

	signed, expiresAt, err := tk.Issue("adminmkce", "admin", "admin-1")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tk.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, "adminmkce", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "admin-1", claims.UserID)
}

func TestTokensExpired(t *testing.T) {
	tk := NewTokens("jwt-secret", -time.Minute)

	signed, _, err := tk.Issue("scanner1", "scanner", "u-1")
	require.NoError(t, err)

	_, err = tk.Parse(signed)
	require.ErrorIs(t, err, ErrToken)
}

func TestTokensWrongSecret(t *testing.T) {
	signed, _, err := NewTokens("secret-a", time.Hour).Issue("u", "member", "HF26ABC123")
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Parse(signed)
	require.ErrorIs(t, err, ErrToken)
}

func TestTokensMalformed(t *testing.T) {
	tk := NewTokens("jwt-secret", time.Hour)

	_, err := tk.Parse("not.a.jwt")
	require.ErrorIs(t, err, ErrToken)
}
