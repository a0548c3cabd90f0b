package testutil

import (
	"chartmenu/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockCredentialsRepository provides a testify mock for core.CredentialsRepository
type MockCredentialsRepository struct {
	mock.Mock
}

func (m *MockCredentialsRepository) LoadAPIKey() (*domain.APIKey, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockCredentialsRepository) SaveAPIKey(apiKey domain.APIKey) error {
	args := m.Called(apiKey)
	return args.Error(0)
}

func (m *MockCredentialsRepository) DeleteAPIKey() error {
	args := m.Called()
	return args.Error(0)
}
