// Package queries contains read operations in the CQRS architecture. Query
// handlers bypass the aggregates and repositories and read straight from the
// database, returning flat response structs shaped for the callers.
package queries

import (
	"errors"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrAuthenticateMemberQueryIsNotConstructed = errors.New(
	"AuthenticateMemberQuery must be created via NewAuthenticateMemberQuery constructor",
)

// AuthenticateMemberQuery represents a login attempt with a login id and
// plaintext password.
type AuthenticateMemberQuery struct { //nolint:recvcheck //using for validation
	loginID  string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateMemberQuery creates a login query. Both fields are required;
// nothing else is checked here, since any mismatch must surface as the same
// unauthorized error.
func NewAuthenticateMemberQuery(loginID, password string) (AuthenticateMemberQuery, error) {
	q := AuthenticateMemberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setLoginID(loginID),
		q.setPassword(password),
	); err != nil {
		return AuthenticateMemberQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateMemberQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateMemberQueryIsNotConstructed)
}

// LoginID returns the login id being authenticated.
func (q AuthenticateMemberQuery) LoginID() string {
	return q.loginID
}

// Password returns the plaintext password to verify.
func (q AuthenticateMemberQuery) Password() string {
	return q.password
}

func (q *AuthenticateMemberQuery) setLoginID(loginID string) error {
	if loginID == "" {
		return errs.NewValueIsRequiredError("loginId")
	}
	q.loginID = loginID
	return nil
}

func (q *AuthenticateMemberQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// AuthenticateMemberQueryResponse is the authenticated member's identity,
// ready to be stamped into an access token.
type AuthenticateMemberQueryResponse struct {
	ID      int64
	LoginID string
	Name    string
}
