package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "pw123",
		FirstName: "Alice",
	}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw123", nil)
	fx.publicIDs.On("NewPublicID").Return("9f8e7d6c5b4a3928171a", nil)
	fx.accountRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = 1
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "9f8e7d6c5b4a3928171a", output.Account.PublicID)
	assert.Equal(t, "alice", output.Account.Username)
	assert.True(t, output.Account.Active)
	assert.False(t, output.Account.Admin)

	// The credential never leaves the service in plaintext.
	insertedAccount := fx.accountRepo.Calls[0].Arguments.Get(1).(*entity.Account)
	assert.Equal(t, "hashed_pw123", insertedAccount.PasswordHash)
	assert.NotEqual(t, "pw123", insertedAccount.PasswordHash)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	inputs := []*usecase.RegisterInput{
		{Email: "a@x.com", Password: "pw123"},
		{Username: "alice", Password: "pw123"},
		{Username: "alice", Email: "a@x.com"},
		{Username: "  ", Email: "a@x.com", Password: "pw123"},
		nil,
	}

	for _, input := range inputs {
		output, err := fx.service.Register(ctx, input)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123"}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw123", nil)
	fx.publicIDs.On("NewPublicID").Return("0000000000000000aaaa", nil)
	fx.accountRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Account")).
		Return(&repository.DuplicateKeyError{Field: "username"})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: "alice2", Email: "a@x.com", Password: "pw123"}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw123", nil)
	fx.publicIDs.On("NewPublicID").Return("0000000000000000bbbb", nil)
	fx.accountRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Account")).
		Return(&repository.DuplicateKeyError{Field: "email"})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_UnidentifiedConflict(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: "alice3", Email: "c@x.com", Password: "pw123"}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw123", nil)
	fx.publicIDs.On("NewPublicID").Return("0000000000000000cccc", nil)
	fx.accountRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Account")).
		Return(&repository.DuplicateKeyError{Field: "unknown"})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	// A conflict whose field could not be identified is reported neutrally,
	// never blamed on the username.
	assert.ErrorIs(t, err, domainerrors.ErrAccountConflict)
	assert.NotErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()

	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(alice, nil)
	fx.hasher.On("Check", "pw123", alice.PasswordHash).Return(true)
	fx.tokens.On("Issue", alice.PublicID).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()

	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(alice, nil)
	fx.hasher.On("Check", "wrong", alice.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw123"})

	assert.Nil(t, output)
	// Unknown username is indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Username: "alice"},
		{Password: "pw123"},
		{},
		nil,
	} {
		output, err := fx.service.Login(ctx, input)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestAccountService_Promote_ThenNoOp(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()

	fx.accountRepo.On("FindByPublicIDForUpdate", ctx, alice.PublicID).Return(alice, nil)
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()

	output, err := fx.service.Promote(ctx, alice.PublicID)
	require.NoError(t, err)
	assert.True(t, output.Account.Admin)

	// The second promote finds the flag already set and reports the no-op.
	output, err = fx.service.Promote(ctx, alice.PublicID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyAdmin)
}

func TestAccountService_Demote(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()
	alice.Admin = true

	fx.accountRepo.On("FindByPublicIDForUpdate", ctx, alice.PublicID).Return(alice, nil)
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()

	output, err := fx.service.Demote(ctx, alice.PublicID)
	require.NoError(t, err)
	assert.False(t, output.Account.Admin)

	output, err = fx.service.Demote(ctx, alice.PublicID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
}

func TestAccountService_ActivateDeactivate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()

	fx.accountRepo.On("FindByPublicIDForUpdate", ctx, alice.PublicID).Return(alice, nil)
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	// Active at creation: activate is a no-op first.
	output, err := fx.service.Activate(ctx, alice.PublicID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyActive)

	output, err = fx.service.Deactivate(ctx, alice.PublicID)
	require.NoError(t, err)
	assert.False(t, output.Account.Active)

	output, err = fx.service.Deactivate(ctx, alice.PublicID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInactive)

	output, err = fx.service.Activate(ctx, alice.PublicID)
	require.NoError(t, err)
	assert.True(t, output.Account.Active)

	// Admin flag is untouched by the active axis.
	assert.False(t, output.Account.Admin)
}

func TestAccountService_Promote_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByPublicIDForUpdate", ctx, "missing").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Promote(ctx, "missing")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_GetByPublicID(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	alice := aliceAccount()

	fx.accountRepo.On("FindByPublicID", ctx, alice.PublicID).Return(alice, nil)

	view, err := fx.service.GetByPublicID(ctx, alice.PublicID)

	require.NoError(t, err)
	assert.Equal(t, alice.PublicID, view.PublicID)
	assert.Equal(t, "alice", view.Username)
}

func TestAccountService_GetByPublicID_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByPublicID", ctx, "missing").Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.GetByPublicID(ctx, "missing")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_List(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	bob := aliceAccount()
	bob.ID = 2
	bob.PublicID = "1111111111111111bbbb"
	bob.Username = "bob"
	bob.Email = "b@x.com"

	fx.accountRepo.On("List", ctx).Return([]*entity.Account{bob, aliceAccount()}, nil)

	summaries, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	// Repository ordering is preserved.
	assert.Equal(t, "bob", summaries[0].Username)
	assert.Equal(t, "alice", summaries[1].Username)
	// No credential field exists on the projection; spot-check the fields that do.
	assert.Equal(t, "b@x.com", summaries[0].Email)
	assert.True(t, summaries[0].Active)
}

func TestAccountService_Delete(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("Delete", ctx, "9f8e7d6c5b4a3928171a").Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, "9f8e7d6c5b4a3928171a"))
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("Delete", ctx, "missing").Return(repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_StorageFaultSurfacesAsError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

	summaries, err := fx.service.List(ctx)

	assert.Nil(t, summaries)
	require.Error(t, err)
	// Connectivity faults are not mapped to any business classification.
	assert.NotErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
