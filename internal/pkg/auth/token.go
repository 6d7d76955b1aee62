package auth

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// MinKeyLen is the minimum decoded signing key length in bytes. HS256 keys
// shorter than the hash output weaken the MAC, so shorter keys are rejected at
// construction time rather than at first use.
const MinKeyLen = 32

// Claim names carried in addition to the registered set.
const (
	claimRoles    = "roles"
	claimMemberID = "mid"
	claimName     = "name"
)

// DecodeSigningKey decodes a configured signing secret. The value may carry a
// "base64:" or "hex:" prefix; anything else is taken as raw bytes.
func DecodeSigningKey(secret string) ([]byte, error) {
	var key []byte
	var err error
	switch {
	case strings.HasPrefix(secret, "base64:"):
		key, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "base64:"))
		if err != nil {
			return nil, fmt.Errorf("decode base64 signing key: %w", err)
		}
	case strings.HasPrefix(secret, "hex:"):
		key, err = hex.DecodeString(strings.TrimPrefix(secret, "hex:"))
		if err != nil {
			return nil, fmt.Errorf("decode hex signing key: %w", err)
		}
	default:
		key = []byte(secret)
	}

	if len(key) < MinKeyLen {
		return nil, fmt.Errorf("signing key must be at least %d bytes, got %d", MinKeyLen, len(key))
	}
	return key, nil
}

// TokenProvider creates and verifies HS256 access tokens carrying the member's
// identity and roles.
type TokenProvider struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenProvider creates a TokenProvider from a configured secret. It fails
// when the decoded key is shorter than MinKeyLen; callers treat that as a
// startup error.
func NewTokenProvider(secret, issuer string, ttl time.Duration) (*TokenProvider, error) {
	key, err := DecodeSigningKey(secret)
	if err != nil {
		return nil, err
	}
	return &TokenProvider{key: key, issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// CreateToken issues a signed access token for the given principal.
func (p *TokenProvider) CreateToken(principal MemberPrincipal) (string, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"sub":         principal.LoginID,
		"iss":         p.issuer,
		"iat":         now.Unix(),
		"exp":         now.Add(p.ttl).Unix(),
		claimRoles:    principal.Roles,
		claimMemberID: principal.ID,
		claimName:     principal.Name,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
}

// ParseToken verifies the token's signature, algorithm, and expiry, and
// extracts the caller's principal from its claims. Any verification failure is
// reported as an unauthorized error; a structurally valid token with a
// non-numeric member id claim is reported as invalid instead, since it
// indicates a malformed token rather than a failed authentication.
func (p *TokenProvider) ParseToken(tokenString string) (MemberPrincipal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(p.issuer))
	if err != nil {
		return MemberPrincipal{}, &errs.UnauthorizedError{Message: "invalid access token", Cause: err}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return MemberPrincipal{}, errs.NewUnauthorizedError("invalid access token")
	}
	return principalFromClaims(claims)
}

func principalFromClaims(claims jwt.MapClaims) (MemberPrincipal, error) {
	principal := MemberPrincipal{}

	if sub, ok := claims["sub"].(string); ok {
		principal.LoginID = sub
	}
	if name, ok := claims[claimName].(string); ok {
		principal.Name = name
	}

	mid, ok := claims[claimMemberID].(float64)
	if !ok {
		return MemberPrincipal{}, errs.NewValueIsInvalidError("token member id claim is not numeric")
	}
	principal.ID = int64(mid)

	if rawRoles, ok := claims[claimRoles].([]any); ok {
		roles := make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		principal.Roles = roles
	}

	return principal, nil
}
