// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userService is the concrete implementation of UserService. It expects
// forms that already passed validation; see userValidationService.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.Hasher

	logger *logger.Logger
}

// NewUserService constructs a UserService over the repository and hasher.
func NewUserService(userRepository store.UserRepository, hasher crypto.Hasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// CreateUser refuses a phone that is already stored, hashes the password
// and persists the record with the terms agreement set.
//
// Two concurrent creates for the same phone may both pass the existence
// check; the store then rejects the second write and ErrUserCreation is
// returned.
func (s *userService) CreateUser(ctx context.Context, form models.UserForm) error {
	log := logger.FromContext(ctx)
	phone := deref(form.Phone)

	_, err := s.userRepository.FindUserByPhone(ctx, phone)
	switch {
	case err == nil:
		return ErrUserAlreadyExists
	case !errors.Is(err, store.ErrRecordNotFound):
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error checking user existence")
		return fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	hashedPassword, err := s.hasher.Hash(deref(form.Password))
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user := models.User{
		FirstName:      deref(form.FirstName),
		LastName:       deref(form.LastName),
		Phone:          phone,
		HashedPassword: hashedPassword,
		TosAgreement:   true,
	}

	if err = s.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	return nil
}

// GetUser returns the stored record. Any lookup failure is reported as
// ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, form models.UserForm) (models.User, error) {
	return s.findUser(ctx, deref(form.Phone))
}

// UpdateUser applies the present mutable fields. The phone never changes.
func (s *userService) UpdateUser(ctx context.Context, form models.UserForm) error {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, deref(form.Phone))
	if err != nil {
		return err
	}

	if form.FirstName != nil {
		user.FirstName = *form.FirstName
	}
	if form.LastName != nil {
		user.LastName = *form.LastName
	}
	if form.Password != nil {
		hashedPassword, err := s.hasher.Hash(*form.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		user.HashedPassword = hashedPassword
	}

	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrUserUpdate, err)
	}

	return nil
}

// DeleteUser removes an existing user.
func (s *userService) DeleteUser(ctx context.Context, form models.UserForm) error {
	user, err := s.findUser(ctx, deref(form.Phone))
	if err != nil {
		return err
	}

	if err = s.userRepository.DeleteUser(ctx, user.Phone); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrUserDeletion, err)
	}

	return nil
}

func (s *userService) findUser(ctx context.Context, phone string) (models.User, error) {
	user, err := s.userRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userService.findUser").Msg("error reading user")
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	return user, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
