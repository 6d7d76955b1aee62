package member

import (
	"errors"
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

// Field length limits shared with request validation.
const (
	LoginIDMaxLen = 50
	NameMaxLen    = 50
)

// ErrMemberIsNotConstructed is returned when a Member instance was not created
// through NewMember or RestoreMember.
var ErrMemberIsNotConstructed = errors.New(
	"Member must be created via NewMember or RestoreMember constructor")

// Member is the account aggregate. A member signs up with a unique login id,
// authenticates with a password (stored only as a hash), and owns the
// deliveries it requests.
//
// The id is a database-assigned surrogate key: zero until the first insert,
// set once via AssignID, never changed afterwards.
type Member struct {
	id           int64
	loginID      string
	passwordHash string
	name         string

	guard guard.ConstructorGuard
}

// NewMember creates a Member pending its first insert. The password must
// already be hashed; the aggregate never sees the plaintext.
func NewMember(loginID, passwordHash, name string) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setLoginID(loginID),
		m.setPasswordHash(passwordHash),
		m.setName(name),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persistence.
func RestoreMember(id int64, loginID, passwordHash, name string) (*Member, error) {
	m, err := NewMember(loginID, passwordHash, name)
	if err != nil {
		return nil, err
	}
	if err := m.AssignID(id); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate ensures the Member instance was properly constructed.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// AssignID sets the database-assigned identifier after the first insert.
// It fails on non-positive ids and on reassignment.
func (m *Member) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", id))
	}
	if m.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("id already assigned: %d", m.id))
	}
	m.id = id
	return nil
}

// ID returns the surrogate identifier, or zero before the first insert.
func (m *Member) ID() int64 {
	return m.id
}

// LoginID returns the unique login id chosen at signup.
func (m *Member) LoginID() string {
	return m.loginID
}

// PasswordHash returns the stored password hash.
func (m *Member) PasswordHash() string {
	return m.passwordHash
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// IsEqual compares two members by their identifiers. Members without an
// assigned id are never equal to anything.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id != 0 && m.id == other.id
}

func (m *Member) setLoginID(loginID string) error {
	if loginID == "" {
		return errs.NewValueIsRequiredError("loginId")
	}
	if len(loginID) > LoginIDMaxLen {
		return errs.NewValueIsOutOfRangeError("loginId length", len(loginID), 1, LoginIDMaxLen)
	}
	m.loginID = loginID
	return nil
}

func (m *Member) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	m.passwordHash = passwordHash
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLen {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLen)
	}
	m.name = name
	return nil
}
