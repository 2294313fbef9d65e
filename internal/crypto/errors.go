package crypto

import "errors"

var (
	ErrEmptyPassword = errors.New("password is empty")
	ErrEmptyHashKey  = errors.New("password hash key is empty")
	ErrUnknownHasher = errors.New("unknown password hasher")
)
