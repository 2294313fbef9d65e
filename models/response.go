package models

// Response is the single result a handler produces for a dispatched request.
//
// A zero StatusCode means 200 and a nil Payload means an empty JSON object.
type Response struct {
	StatusCode int
	Payload    any
}

// ErrorPayload is the body of every failure response.
type ErrorPayload struct {
	Error string `json:"Error"`
}

// NewErrorResponse builds a failure response with a single Error message.
func NewErrorResponse(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Payload:    ErrorPayload{Error: message},
	}
}
