// Package server wires and runs the API's HTTP server.
//
// It owns the server lifecycle: binding the listen address, serving until a
// stop signal or context cancellation, and a graceful shutdown bounded by
// the configured timeout.
package server
