package commands_test

import (
	"errors"
	"testing"

	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/commands"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignUpMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignUpMemberCommand("rider01", "Str0ng-Passw0rd!", "Kim")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "Str0ng-Passw0rd!").Return("$2a$10$hash", nil).Once()

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpMemberCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "rider01", created.LoginID())
	assert.Equal(t, "$2a$10$hash", created.PasswordHash())
	assert.Equal(t, "Kim", created.Name())
	hasher.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSignUpMemberCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SignUpMemberCommand{} // not constructed properly
	factory := new(MockMemberUoWFactory)
	h := commands.NewSignUpMemberCommandHandler(factory, new(MockPasswordHasher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSignUpMemberCommandHandler_Handle_DuplicateLoginID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignUpMemberCommand("rider01", "Str0ng-Passw0rd!", "Kim")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "Str0ng-Passw0rd!").Return("$2a$10$hash", nil).Once()

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).
			Return(errs.NewDuplicateValueError("loginId", "rider01")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpMemberCommandHandler(factory, hasher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateValue)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignUpMemberCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignUpMemberCommand("rider01", "Str0ng-Passw0rd!", "Kim")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "Str0ng-Passw0rd!").Return("", errors.New("hash error")).Once()

	factory := new(MockMemberUoWFactory)
	h := commands.NewSignUpMemberCommandHandler(factory, hasher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewSignUpMemberCommand_Validation(t *testing.T) {
	tests := []struct {
		name     string
		loginID  string
		password string
		display  string
	}{
		{"empty_login_id", "", "Str0ng-Passw0rd!", "Kim"},
		{"weak_password_short", "rider01", "Ab1!", "Kim"},
		{"weak_password_two_classes", "rider01", "abcdefghijk1", "Kim"},
		{"empty_name", "rider01", "Str0ng-Passw0rd!", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewSignUpMemberCommand(tc.loginID, tc.password, tc.display)
			require.Error(t, err)
		})
	}
}
