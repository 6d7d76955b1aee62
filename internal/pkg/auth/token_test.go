package auth_test

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newProvider(t *testing.T) *auth.TokenProvider {
	t.Helper()
	p, err := auth.NewTokenProvider(testSecret, "delivery-demo", time.Hour)
	require.NoError(t, err)
	return p
}

func TestDecodeSigningKey(t *testing.T) {
	raw := []byte(testSecret)

	t.Run("raw", func(t *testing.T) {
		key, err := auth.DecodeSigningKey(testSecret)
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("base64_prefix", func(t *testing.T) {
		key, err := auth.DecodeSigningKey("base64:" + base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("hex_prefix", func(t *testing.T) {
		key, err := auth.DecodeSigningKey("hex:" + hex.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("malformed_encodings", func(t *testing.T) {
		_, err := auth.DecodeSigningKey("base64:!!!not-base64!!!")
		require.Error(t, err)

		_, err = auth.DecodeSigningKey("hex:zzzz")
		require.Error(t, err)
	})

	t.Run("short_keys_are_rejected", func(t *testing.T) {
		_, err := auth.DecodeSigningKey("too-short")
		require.Error(t, err)

		// 31 decoded bytes is still one short.
		_, err = auth.DecodeSigningKey("hex:" + hex.EncodeToString(raw[:31]))
		require.Error(t, err)
	})
}

func TestNewTokenProvider_RejectsShortKey(t *testing.T) {
	_, err := auth.NewTokenProvider("short", "delivery-demo", time.Hour)
	require.Error(t, err)
}

func TestTokenProvider_RoundTrip(t *testing.T) {
	p := newProvider(t)

	token, err := p.CreateToken(auth.MemberPrincipal{
		ID:      42,
		LoginID: "rider01",
		Name:    "Kim",
		Roles:   []string{"MEMBER"},
	})
	require.NoError(t, err)

	principal, err := p.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.ID)
	assert.Equal(t, "rider01", principal.LoginID)
	assert.Equal(t, "Kim", principal.Name)
	assert.Equal(t, []string{"MEMBER"}, principal.Roles)
	assert.True(t, principal.HasRole("MEMBER"))
	assert.False(t, principal.HasRole("ADMIN"))
}

func TestTokenProvider_ParseToken_Rejections(t *testing.T) {
	p := newProvider(t)

	t.Run("garbage", func(t *testing.T) {
		_, err := p.ParseToken("not-a-token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("tampered_signature", func(t *testing.T) {
		token, err := p.CreateToken(auth.MemberPrincipal{ID: 42, LoginID: "rider01"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

		_, err = p.ParseToken(tampered)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("wrong_key", func(t *testing.T) {
		other, err := auth.NewTokenProvider(strings.Repeat("x", 32), "delivery-demo", time.Hour)
		require.NoError(t, err)
		token, err := other.CreateToken(auth.MemberPrincipal{ID: 42, LoginID: "rider01"})
		require.NoError(t, err)

		_, err = p.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := auth.NewTokenProvider(testSecret, "delivery-demo", -time.Minute)
		require.NoError(t, err)
		token, err := expired.CreateToken(auth.MemberPrincipal{ID: 42, LoginID: "rider01"})
		require.NoError(t, err)

		_, err = p.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		other, err := auth.NewTokenProvider(testSecret, "someone-else", time.Hour)
		require.NoError(t, err)
		token, err := other.CreateToken(auth.MemberPrincipal{ID: 42, LoginID: "rider01"})
		require.NoError(t, err)

		_, err = p.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("non_numeric_member_id_is_invalid_not_unauthorized", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":   "rider01",
			"iss":   "delivery-demo",
			"iat":   time.Now().Unix(),
			"exp":   time.Now().Add(time.Hour).Unix(),
			"roles": []string{"MEMBER"},
			"mid":   "forty-two",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = p.ParseToken(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrUnauthorized)
	})
}
