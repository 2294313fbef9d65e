package models

// CreateUserRequest is the body a client sends to create a user.
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	TosAgreement bool   `json:"tosAgreement"`
}

// UpdateUserRequest is the body a client sends to update a user. Nil fields
// are left out of the JSON and keep their stored value.
type UpdateUserRequest struct {
	Phone     string  `json:"phone"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Password  *string `json:"password,omitempty"`
}
