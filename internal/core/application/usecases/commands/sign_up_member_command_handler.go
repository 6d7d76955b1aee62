package commands

import (
	"context"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
)

// SignUpMemberCommandHandler handles the business logic for member signup.
// Hashes the password, creates the aggregate, and persists it inside a
// transaction. A taken login id surfaces as a duplicate-value error from the
// repository.
type SignUpMemberCommandHandler struct {
	uowFactory MemberUoWFactory
	hasher     PasswordHasher
}

// NewSignUpMemberCommandHandler creates a handler for member signup operations.
func NewSignUpMemberCommandHandler(uowFactory MemberUoWFactory, hasher PasswordHasher) SignUpMemberCommandHandler {
	return SignUpMemberCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the signup command and returns the persisted member with
// its database-assigned id.
func (h *SignUpMemberCommandHandler) Handle(
	ctx context.Context, cmd SignUpMemberCommand,
) (*member.Member, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newMember, err := member.NewMember(cmd.LoginID(), passwordHash, cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MemberRepository().Add(ctx, newMember); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newMember, nil
}
