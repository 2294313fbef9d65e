// Package service holds the business rules of the users resource. It sits
// between the resource handlers and the record store and reports every
// failure as one of the sentinel errors in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService manages user records addressed by phone. Forms carry values
// already normalized by the validators package; a nil field is absent.
type UserService interface {
	// CreateUser stores a new user built from form. All five fields are
	// required and the password is hashed before it is stored.
	CreateUser(ctx context.Context, form models.UserForm) error

	// GetUser returns the stored record for form.Phone.
	GetUser(ctx context.Context, form models.UserForm) (models.User, error)

	// UpdateUser changes the present mutable fields of the user identified
	// by form.Phone.
	UpdateUser(ctx context.Context, form models.UserForm) error

	// DeleteUser removes the user identified by form.Phone.
	DeleteUser(ctx context.Context, form models.UserForm) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
