package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userRepository is the [RecordStore]-backed implementation of
// [UserRepository]. Users are JSON documents under the "users" category,
// keyed by phone.
type userRepository struct {
	records RecordStore
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] over records.
func NewUserRepository(records RecordStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		records: records,
		logger:  logger,
	}
}

// CreateUser stores a new user. [ErrRecordAlreadyExists] is returned when
// the phone is taken.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	if err = r.records.Create(ctx, user.Category(), user.Phone, data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user record")
		return err
	}

	return nil
}

// FindUserByPhone returns the stored user or [ErrRecordNotFound].
func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (models.User, error) {
	data, err := r.records.Read(ctx, models.UsersCategory, phone)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(data, &user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByPhone").Msg("stored user record is corrupted")
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return user, nil
}

// UpdateUser overwrites an existing user record.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	if err = r.records.Update(ctx, user.Category(), user.Phone, data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user record")
		return err
	}

	return nil
}

// DeleteUser removes the user stored under phone.
func (r *userRepository) DeleteUser(ctx context.Context, phone string) error {
	if err := r.records.Delete(ctx, models.UsersCategory, phone); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user record")
		return err
	}

	return nil
}
