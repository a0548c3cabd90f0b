package testutil

import (
	"context"

	"chartmenu/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.KubeContext = (*MockKubeContext)(nil)

// MockKubeContext provides a testify mock for ports.KubeContext
type MockKubeContext struct {
	mock.Mock
}

func (m *MockKubeContext) CurrentNamespace() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockKubeContext) NamespaceExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
