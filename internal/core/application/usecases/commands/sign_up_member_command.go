package commands

import (
	"errors"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrSignUpMemberCommandIsNotConstructed = errors.New(
	"SignUpMemberCommand must be created via NewSignUpMemberCommand constructor",
)

// SignUpMemberCommand represents a request to register a new member account.
// The password is carried as plaintext only inside this command; it is hashed
// by the handler and never persisted.
type SignUpMemberCommand struct { //nolint:recvcheck //using for validation
	loginID  string
	password string
	name     string

	guard guard.ConstructorGuard
}

// NewSignUpMemberCommand creates a signup command. Validates login id and name
// lengths and enforces the password strength policy.
func NewSignUpMemberCommand(loginID, password, name string) (SignUpMemberCommand, error) {
	cmd := SignUpMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoginID(loginID),
		cmd.setPassword(password),
		cmd.setName(name),
	); err != nil {
		return SignUpMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpMemberCommand) Validate() error {
	return c.guard.Validate(ErrSignUpMemberCommandIsNotConstructed)
}

// LoginID returns the requested login id.
func (c SignUpMemberCommand) LoginID() string {
	return c.loginID
}

// Password returns the plaintext password to be hashed by the handler.
func (c SignUpMemberCommand) Password() string {
	return c.password
}

// Name returns the member's display name.
func (c SignUpMemberCommand) Name() string {
	return c.name
}

func (c *SignUpMemberCommand) setLoginID(loginID string) error {
	if loginID == "" {
		return errs.NewValueIsRequiredError("loginId")
	}
	if len(loginID) > member.LoginIDMaxLen {
		return errs.NewValueIsOutOfRangeError("loginId length", len(loginID), 1, member.LoginIDMaxLen)
	}
	c.loginID = loginID
	return nil
}

func (c *SignUpMemberCommand) setPassword(password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *SignUpMemberCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > member.NameMaxLen {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, member.NameMaxLen)
	}
	c.name = name
	return nil
}
