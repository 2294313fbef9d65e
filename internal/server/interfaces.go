package server

import "net"

// Server is the lifecycle of the user-keeper process and of each listener
// it manages: HTTP, HTTPS, gRPC and metrics.
type Server interface {
	// RunServer serves until the process is told to stop.
	RunServer()

	// Shutdown stops accepting connections and drains in-flight requests.
	Shutdown()
}

// listener is a [Server] bound to an address at construction time.
type listener interface {
	Server

	// Addr is the bound address, useful when the configured port was 0.
	Addr() net.Addr
}
