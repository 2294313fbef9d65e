package models

import "encoding/json"

// DispatchRequest is the gRPC message carrying a raw request into the
// dispatcher. Field names mirror the HTTP request parts.
type DispatchRequest struct {
	Path    string              `json:"path"`
	Query   map[string]string   `json:"query,omitempty"`
	Method  string              `json:"method"`
	Headers map[string][]string `json:"headers,omitempty"`
	Body    string              `json:"body,omitempty"`
}

// DispatchResponse is the gRPC message carrying the serialized response.
type DispatchResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}
