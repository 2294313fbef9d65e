// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the users API.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP transport
// from the CLI commands. Failure responses are mapped by mapHTTPError to the
// sentinel values in errors.go so that callers can use [errors.Is] (e.g.
// [ErrUserAlreadyExists] for a duplicate create, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the users API.
type ServerAdapter interface {
	// Ping checks that the server answers the health route.
	Ping(ctx context.Context) error

	// CreateUser sends POST /users with the full user record.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	// GetUser fetches GET /users?phone=... and returns the public record.
	GetUser(ctx context.Context, phone string) (models.PublicUser, error)

	// UpdateUser sends PUT /users with the phone and the changed fields.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) error

	// DeleteUser sends DELETE /users?phone=....
	DeleteUser(ctx context.Context, phone string) error
}
