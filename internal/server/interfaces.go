package server

import "context"

// Server defines the lifecycle contract of the API server.
//
// Implementations block in [RunServer] until ctx is canceled, a stop signal
// arrives or serving fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error only when the server could not start or failed
	// while serving.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
