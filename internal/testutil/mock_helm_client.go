package testutil

import (
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.HelmClient = (*MockHelmClient)(nil)

// MockHelmClient provides a testify mock for ports.HelmClient
type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) Execute(op domain.HelmOperation) error {
	args := m.Called(op)
	return args.Error(0)
}
