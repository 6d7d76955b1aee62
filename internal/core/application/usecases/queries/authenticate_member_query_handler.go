package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) bool
}

// AuthenticateMemberQueryHandler verifies login credentials against the
// members table. Unknown login id and wrong password produce the exact same
// unauthorized error, so a caller cannot enumerate accounts.
type AuthenticateMemberQueryHandler struct {
	db       *gorm.DB
	verifier PasswordVerifier
}

// NewAuthenticateMemberQueryHandler creates a handler for login attempts.
func NewAuthenticateMemberQueryHandler(db *gorm.DB, verifier PasswordVerifier) AuthenticateMemberQueryHandler {
	return AuthenticateMemberQueryHandler{db: db, verifier: verifier}
}

// Handle verifies the credentials and returns the member's identity.
func (h AuthenticateMemberQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateMemberQuery,
) (AuthenticateMemberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateMemberQueryResponse{}, err
	}

	var resp AuthenticateMemberQueryResponse
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			login_id,
			password_hash,
			name
		FROM members
		WHERE login_id = ?
	`, query.LoginID()).Row()

	err := row.Scan(&resp.ID, &resp.LoginID, &passwordHash, &resp.Name)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthenticateMemberQueryResponse{}, errs.NewUnauthorizedError("invalid login id or password")
	}
	if err != nil {
		return AuthenticateMemberQueryResponse{}, err
	}

	if !h.verifier.Verify(passwordHash, query.Password()) {
		return AuthenticateMemberQueryResponse{}, errs.NewUnauthorizedError("invalid login id or password")
	}

	return resp, nil
}
