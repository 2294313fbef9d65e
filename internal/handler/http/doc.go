// Package http implements the HTTP transport of the server.
//
// Every request, whatever its path or method, is buffered and handed to the
// shared [router.Router]; this package only adds the cross-cutting concerns
// around it: panic recovery, request tracing and access logging.
package http
