package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is returned when a required field is absent or did not
	// pass its field check. The field name is appended to the message.
	ErrMissingField = errors.New("missing or invalid field")
)
