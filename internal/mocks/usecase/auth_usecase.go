// Package usecase provides testify mocks for the usecase contracts.
package usecase

import (
	"context"
	"testing"

	"asana/internal/domain/entity"
	"asana/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*usecase.AuthOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*usecase.AuthOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}
