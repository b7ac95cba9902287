// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) FindByPublicID(ctx context.Context, publicID string) (*entity.Account, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByPublicIDForUpdate(ctx context.Context, publicID string) (*entity.Account, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)

	return args.Error(0)
}

// PassthroughTxManager is a TransactionManager for tests: Execute runs the
// callback directly against the configured factory, so the transactional flow
// is exercised against mocked repositories without a database.
type PassthroughTxManager struct {
	Factory repository.RepositoryFactory
	Err     error // When set, Execute fails without invoking the callback.
}

func (m *PassthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	args := m.Called()

	return args.Get(0).(repository.AccountRepository)
}
