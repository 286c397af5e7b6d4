package qr

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
)

func testSecurityConfig() config.SecurityConfig {
	return config.SecurityConfig{
		FernetKey:  "ZmVybmV0LWtleS1mb3ItZXZlbnQtdGlja2V0aW5nPT0=",
		HMACSecret: "hmac-secret-for-qr-signatures-2024",
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec(testSecurityConfig())
	require.NoError(t, err)

	issuedAt := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	token, err := codec.Encode("3F2A9B1C", "HF26K7Q2ZP", "Null Pointers", issuedAt)
	require.NoError(t, err)
	require.NotContains(t, token, "3F2A9B1C")
	require.NotContains(t, token, "Null Pointers")

	p, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "3F2A9B1C", p.TicketID)
	require.Equal(t, "HF26K7Q2ZP", p.TeamCode)
	require.Equal(t, "Null Pointers", p.TeamName)
	require.Equal(t, issuedAt.Unix(), p.IssuedAt)
	require.NotEmpty(t, p.Signature)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec, err := NewCodec(testSecurityConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "gAAAAABl-not-a-token"} {
		_, err := codec.Decode(token)
		require.ErrorIs(t, err, entities.ErrBadPayload, "token %q", token)
	}
}

func TestCodecRejectsTamperedSignature(t *testing.T) {
	cfg := testSecurityConfig()
	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	// Re-encrypt a payload signed with a different HMAC secret. Decryption
	// succeeds, signature verification must not.
	forged := cfg
	forged.HMACSecret = "attacker-secret"
	forger, err := NewCodec(forged)
	require.NoError(t, err)

	token, err := forger.Encode("3F2A9B1C", "HF26K7Q2ZP", "Null Pointers", time.Now())
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, entities.ErrBadPayload)
	require.ErrorIs(t, err, ErrSignature)
}

func TestCodecRejectsWrongFernetKey(t *testing.T) {
	cfg := testSecurityConfig()
	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	other := cfg
	other.FernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	otherCodec, err := NewCodec(other)
	require.NoError(t, err)

	token, err := otherCodec.Encode("3F2A9B1C", "HF26K7Q2ZP", "Null Pointers", time.Now())
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, entities.ErrBadPayload)
	require.ErrorIs(t, err, security.ErrDecrypt)
}

func TestNewCodecBadKey(t *testing.T) {
	cfg := testSecurityConfig()
	cfg.FernetKey = "nope"
	_, err := NewCodec(cfg)
	require.Error(t, err)
}

func TestImagePNG(t *testing.T) {
	png, err := ImagePNG("gAAAAABlPayloadToken")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestImagePNGEmpty(t *testing.T) {
	_, err := ImagePNG("")
	require.Error(t, err)
}
