package token_test

import (
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/fileserve/token"
)

const testSecret = "a-secret-of-enough-length"

func TestJWTMakerRoundTrip(t *testing.T) {
	maker, err := token.NewJWTMaker(testSecret)
	require.NoError(t, err)

	signed, payload, err := maker.CreateToken("alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotNil(t, payload)

	verified, err := maker.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", verified.Subject)
	assert.Equal(t, payload.ID, verified.ID)
	assert.True(t, verified.Valid())
}

func TestJWTMakerShortSecret(t *testing.T) {
	_, err := token.NewJWTMaker("short")
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	maker, err := token.NewJWTMaker(testSecret)
	require.NoError(t, err)

	signed, _, err := maker.CreateToken("alice", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(signed)
	require.Error(t, err)
	assert.Equal(t, token.CodeExpiredToken, errx.AsErrorX(err).Code())
}

func TestVerifyGarbageToken(t *testing.T) {
	maker, err := token.NewJWTMaker(testSecret)
	require.NoError(t, err)

	_, err = maker.VerifyToken("definitely.not.a.jwt")
	require.Error(t, err)
	assert.Equal(t, token.CodeInvalidToken, errx.AsErrorX(err).Code())
}

func TestVerifyTokenSignedWithDifferentKey(t *testing.T) {
	maker, err := token.NewJWTMaker(testSecret)
	require.NoError(t, err)

	other, err := token.NewJWTMaker("another-secret-of-enough-length")
	require.NoError(t, err)

	signed, _, err := other.CreateToken("alice", time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(signed)
	assert.Error(t, err)
}

func TestNewOpaqueToken(t *testing.T) {
	a := token.NewOpaqueToken()
	b := token.NewOpaqueToken()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 40) // 32 random bytes, base64url without padding
}
