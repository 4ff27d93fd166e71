// filepath: internal/deletion/mocks/stores_mock.go
package mocks

import (
	"context"

	"mediabridge/internal/deletion"

	"github.com/stretchr/testify/mock"
)

// MockIndexStore is a mock implementation of deletion.IndexStore
type MockIndexStore struct {
	mock.Mock
}

var _ deletion.IndexStore = (*MockIndexStore)(nil)

func (m *MockIndexStore) FindIDByPath(ctx context.Context, path string) (int64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIndexStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIndexStore) DeleteByPath(ctx context.Context, path string) (int64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(int64), args.Error(1)
}

// MockFileStore mocks the filesystem operations
type MockFileStore struct {
	mock.Mock
}

var _ deletion.FileStore = (*MockFileStore)(nil)

func (m *MockFileStore) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
