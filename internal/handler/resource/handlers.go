package resource

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Route names served by [Handlers.Register].
const (
	RouteUsers = "users"
	RoutePing  = "ping"
)

// Handlers holds the services the resource handlers call.
type Handlers struct {
	users service.UserService

	logger *logger.Logger
}

// NewHandlers returns the handler set over services.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		users:  services.UserService,
		logger: logger,
	}
}

// Register adds every resource route to r.
func (h *Handlers) Register(r *router.Router) {
	r.Handle(RouteUsers, h.Users)
	r.Handle(RoutePing, Ping)
}

// NewRouter builds the routing table with the resource routes and the
// not-found fallback.
func (h *Handlers) NewRouter(opts ...router.Option) *router.Router {
	r := router.New(h.logger, append([]router.Option{router.WithNotFound(NotFound)}, opts...)...)
	h.Register(r)

	return r
}

// Ping answers 200 with an empty object.
func Ping(context.Context, models.Request) models.Response {
	return models.Response{StatusCode: http.StatusOK}
}

// NotFound answers 404 with an empty object.
func NotFound(context.Context, models.Request) models.Response {
	return models.Response{StatusCode: http.StatusNotFound}
}
