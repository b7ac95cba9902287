package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"roster/internal/domain/entity"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
// The transaction manager passes straight through to accountRepo, so a single
// repository mock serves both transactional and direct operations.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.PassthroughTxManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	publicIDs   *mockSvc.MockPublicIDGenerator
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	publicIDs := mockSvc.NewMockPublicIDGenerator(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("NewAccountRepository").Return(accountRepo).Maybe()
	txManager := &mockRepo.PassthroughTxManager{Factory: factory}

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		PublicIDs:   publicIDs,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		publicIDs:   publicIDs,
	}
}

func aliceAccount() *entity.Account {
	return &entity.Account{
		ID:           1,
		PublicID:     "9f8e7d6c5b4a3928171a",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hashed_pw123",
		Active:       true,
		Admin:        false,
		CreatedAt:    time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}
