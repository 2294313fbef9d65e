package models

import "net/http"

// Request is the transport-independent form of an inbound request. It lives
// for a single dispatch.
type Request struct {
	// Path is the request path with leading and trailing slashes removed.
	Path string

	// Query holds the decoded query string. When a key repeats, the first
	// value is kept.
	Query map[string]string

	// Method is the lower-cased HTTP method token ("get", "post", ...).
	Method string

	// Headers are passed through as received.
	Headers http.Header

	// Body is the fully buffered request payload.
	Body string
}
