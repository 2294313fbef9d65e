package service

import (
	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

// Services groups the services handed to the handler layer.
type Services struct {
	UserService UserService
}

// NewServices builds the validated user service over the storages.
func NewServices(storages *store.Storages, hasher crypto.Hasher, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserValidationService().Wrap(
			NewUserService(storages.UserRepository, hasher, logger),
		),
	}
}
