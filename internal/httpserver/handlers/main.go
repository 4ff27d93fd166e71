// filepath: internal/httpserver/handlers/main.go
package handlers

import (
	"context"
	"time"

	"mediabridge/internal/channel"
)

// ChannelHandler answers method calls for one named channel.
type ChannelHandler interface {
	Name() string
	Handle(ctx context.Context, call channel.MethodCall, result channel.Result)
}

// Handlers holds the dependencies shared by the HTTP handlers.
type Handlers struct {
	Channels  map[string]ChannelHandler
	Version   string
	StartTime time.Time
}

// NewHandlers creates a new instance of Handlers, registering each channel
// under its name.
func NewHandlers(version string, startTime time.Time, channels ...ChannelHandler) *Handlers {
	h := &Handlers{
		Channels:  make(map[string]ChannelHandler, len(channels)),
		Version:   version,
		StartTime: startTime,
	}
	for _, ch := range channels {
		h.Channels[ch.Name()] = ch
	}
	return h
}
