// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists records addressed by a (category, key) pair.
//
// Four [RecordStore] backends are available: JSON files on disk, PostgreSQL,
// SQLite and an embedded Badger database. [UserRepository] encodes
// [models.User] records on top of whichever backend is configured.
package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is a key-value store grouped by category.
//
// Keys and categories must be single path segments: empty values, path
// separators and ".." yield [ErrInvalidKey].
type RecordStore interface {
	// Create stores data under (category, key). It fails with
	// [ErrRecordAlreadyExists] if the key is taken.
	Create(ctx context.Context, category, key string, data []byte) error

	// Read returns the data stored under (category, key) or
	// [ErrRecordNotFound].
	Read(ctx context.Context, category, key string) ([]byte, error)

	// Update replaces the data of an existing record. Missing records yield
	// [ErrRecordNotFound].
	Update(ctx context.Context, category, key string, data []byte) error

	// Delete removes an existing record. Missing records yield
	// [ErrRecordNotFound].
	Delete(ctx context.Context, category, key string) error

	// Close releases the resources held by the backend.
	Close() error
}

// UserRepository reads and writes [models.User] records keyed by phone.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByPhone(ctx context.Context, phone string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, phone string) error
}

// ValueLogCollector is implemented by backends that need periodic garbage
// collection of their value log.
type ValueLogCollector interface {
	RunValueLogGC(ctx context.Context) error
}
