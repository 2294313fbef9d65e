package service

import "errors"

// Validation errors.
var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrMissingFieldsToUpdate = errors.New("missing fields to update")
)

// State errors.
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// Dependency failures. They wrap the underlying store or hasher error.
var (
	ErrPasswordHashing = errors.New("could not hash the password")
	ErrUserCreation    = errors.New("could not create the user")
	ErrUserUpdate      = errors.New("could not update the user")
	ErrUserDeletion    = errors.New("could not delete the user")
)
