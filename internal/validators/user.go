package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field names accepted by [UserValidator.Validate]. They match the JSON keys
// used in request payloads.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldTosAgreement = "tosAgreement"
)

// ParsePayload decodes a buffered request body into a JSON object. Anything
// that is not a JSON object yields an empty payload so that every field is
// later treated as absent.
func ParsePayload(body string) map[string]any {
	payload := make(map[string]any)
	if strings.TrimSpace(body) == "" {
		return payload
	}

	if err := json.Unmarshal([]byte(body), &payload); err != nil || payload == nil {
		return make(map[string]any)
	}

	return payload
}

// UserFormFromPayload extracts every user field from a decoded body.
func UserFormFromPayload(payload map[string]any) models.UserForm {
	var form models.UserForm

	if v, ok := String(payload[FieldFirstName]); ok {
		form.FirstName = &v
	}
	if v, ok := String(payload[FieldLastName]); ok {
		form.LastName = &v
	}
	if v, ok := Phone(payload[FieldPhone]); ok {
		form.Phone = &v
	}
	if v, ok := String(payload[FieldPassword]); ok {
		form.Password = &v
	}
	if TosAgreement(payload[FieldTosAgreement]) {
		accepted := true
		form.TosAgreement = &accepted
	}

	return form
}

// UserFormFromQuery extracts the phone from decoded query parameters. Query
// strings never carry the other user fields.
func UserFormFromQuery(query map[string]string) models.UserForm {
	var form models.UserForm

	raw, ok := query[FieldPhone]
	if !ok {
		return form
	}

	if v, ok := Phone(raw); ok {
		form.Phone = &v
	}

	return form
}

// UserValidator checks presence of fields on a [models.UserForm]. Field
// values are already normalized when the form is built, so presence is the
// only remaining rule.
type UserValidator struct{}

// NewUserValidator returns a [Validator] for user forms.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate reports the first missing field among fields. With no fields
// given, every field required for creation is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch form := obj.(type) {
	case models.UserForm:
		return v.validateUserForm(form, fields...)
	case *models.UserForm:
		if form == nil {
			return ErrUnsupportedType
		}
		return v.validateUserForm(*form, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserForm(form models.UserForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldPhone, FieldPassword, FieldTosAgreement}
	}

	for _, f := range fields {
		var present bool
		switch f {
		case FieldFirstName:
			present = form.FirstName != nil
		case FieldLastName:
			present = form.LastName != nil
		case FieldPhone:
			present = form.Phone != nil
		case FieldPassword:
			present = form.Password != nil
		case FieldTosAgreement:
			present = form.TosAgreement != nil && *form.TosAgreement
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}

		if !present {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	return nil
}
