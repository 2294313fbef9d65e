package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// UserValidationService checks field presence before delegating to the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, form models.UserForm) error {
	if err := v.validator.Validate(ctx, form); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredFields, err)
	}

	return v.inner.CreateUser(ctx, form)
}

func (v *UserValidationService) GetUser(ctx context.Context, form models.UserForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form, validators.FieldPhone); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingRequiredField, err)
	}

	return v.inner.GetUser(ctx, form)
}

// UpdateUser requires the phone and at least one of first name, last name
// or password, checked in that order.
func (v *UserValidationService) UpdateUser(ctx context.Context, form models.UserForm) error {
	if err := v.validator.Validate(ctx, form, validators.FieldPhone); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredField, err)
	}

	if !form.HasUpdates() {
		return ErrMissingFieldsToUpdate
	}

	return v.inner.UpdateUser(ctx, form)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, form models.UserForm) error {
	if err := v.validator.Validate(ctx, form, validators.FieldPhone); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredField, err)
	}

	return v.inner.DeleteUser(ctx, form)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
