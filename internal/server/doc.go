// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the plaintext HTTP, HTTPS, gRPC and metrics
// listeners and the background workers, including startup, signal handling,
// and graceful shutdown of everything that was started.
package server
