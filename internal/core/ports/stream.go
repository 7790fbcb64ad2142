package ports

import (
	"context"

	"go.trai.ch/fractal/internal/core/domain"
)

// StreamConn is one client connection of the streaming endpoint.
//
//go:generate mockgen -source=stream.go -destination=mocks/mock_stream.go -package=mocks
type StreamConn interface {
	// Receive blocks until the client sends a parameter record.
	// It returns io.EOF once the client closed the connection.
	Receive(ctx context.Context) (domain.Params, error)
	// Send delivers one event to the client. It is safe for concurrent use.
	Send(ctx context.Context, ev domain.StreamEvent) error
}

// StreamSession serves one client until it disconnects or ctx is done.
type StreamSession func(ctx context.Context, conn StreamConn) error

// StreamServer accepts streaming clients.
type StreamServer interface {
	// Serve listens on addr and runs session for every client until ctx is done.
	Serve(ctx context.Context, addr string, session StreamSession) error
}
