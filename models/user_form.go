package models

// UserForm carries the user fields extracted from a request. A nil field
// means the value was absent or failed validation; the two cases are not
// distinguished.
type UserForm struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Password     *string
	TosAgreement *bool
}

// HasUpdates reports whether at least one mutable field is present.
func (f UserForm) HasUpdates() bool {
	return f.FirstName != nil || f.LastName != nil || f.Password != nil
}
