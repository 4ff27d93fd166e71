// filepath: internal/httpserver/handlers/main_test.go
package handlers

import (
	"context"

	"mediabridge/internal/channel"

	"github.com/stretchr/testify/mock"
)

// --- MOCK CHANNEL HANDLER ---
type MockChannelHandler struct {
	mock.Mock
	name string
}

var _ ChannelHandler = (*MockChannelHandler)(nil)

func (m *MockChannelHandler) Name() string {
	return m.name
}

func (m *MockChannelHandler) Handle(ctx context.Context, call channel.MethodCall, result channel.Result) {
	m.Called(ctx, call, result)
}

func newMockChannel(name string) *MockChannelHandler {
	return &MockChannelHandler{name: name}
}
