// Package usecase provides a testify mock for the account usecase interface.
package usecase

import (
	"context"

	"roster/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a testify mock of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockAccountUsecase) List(ctx context.Context) ([]*usecase.AccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.AccountSummary), args.Error(1)
}

func (m *MockAccountUsecase) GetByPublicID(ctx context.Context, publicID string) (*usecase.AccountView, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AccountView), args.Error(1)
}

func (m *MockAccountUsecase) Promote(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

func (m *MockAccountUsecase) Demote(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

func (m *MockAccountUsecase) Activate(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

func (m *MockAccountUsecase) Deactivate(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

func (m *MockAccountUsecase) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)

	return args.Error(0)
}
