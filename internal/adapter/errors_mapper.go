package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/models"
)

var messageErrors = map[string]error{
	app.MsgMissingRequiredFields: ErrInvalidInput,
	app.MsgMissingRequiredField:  ErrInvalidInput,
	app.MsgMissingFieldsToUpdate: ErrInvalidInput,
	app.MsgUserAlreadyExists:     ErrUserAlreadyExists,
	app.MsgUserDoesNotExist:      ErrUserNotFound,
	app.MsgUserNotFound:          ErrUserNotFound,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())

	var statusErr error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr = ErrBadRequest
	case http.StatusNotFound:
		statusErr = ErrNotFound
	case http.StatusMethodNotAllowed:
		statusErr = ErrMethodNotAllowed
	case http.StatusInternalServerError:
		statusErr = ErrInternalServerError
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}

	if domainErr, ok := messageErrors[message]; ok {
		return fmt.Errorf("%w: %w: %s", statusErr, domainErr, message)
	}
	if message == "" {
		return statusErr
	}

	return fmt.Errorf("%w: %s", statusErr, message)
}

// errorMessage returns the Error field of a failure body, or the trimmed
// body when it is not the expected JSON object.
func errorMessage(body []byte) string {
	var payload models.ErrorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		return payload.Error
	}

	return strings.TrimSpace(string(body))
}
