package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// PasswordMinLen is the minimum accepted password length.
const PasswordMinLen = 12

// ValidatePassword enforces the signup password policy: at least
// PasswordMinLen characters and at least three of the four character classes
// (lowercase, uppercase, digit, special).
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return errs.NewValueIsInvalidError("password must be at least 12 characters")
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	classes := 0
	for _, ok := range []bool{lower, upper, digit, special} {
		if ok {
			classes++
		}
	}
	if classes < 3 {
		return errs.NewValueIsInvalidError(
			"password must contain at least three of: lowercase, uppercase, digit, special character")
	}
	return nil
}

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. A non-positive cost falls back to
// the bcrypt default.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext password.
func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
