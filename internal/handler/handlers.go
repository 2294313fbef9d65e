// Package handler wires the resource handler set into the HTTP and gRPC
// transports. Both transports share one routing table built here.
package handler

import (
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-user-keeper/internal/handler/http"
	"github.com/MKhiriev/go-user-keeper/internal/handler/resource"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/internal/service"
)

type Handlers struct {
	Router *router.Router
	HTTP   *http.Handler
	GRPC   *grpc.Handler
}

// NewHandlers builds the routing table once and the transport handlers the
// configuration asks for. The HTTP handler serves both the plaintext and the
// TLS listener.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...router.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		Router: resource.NewHandlers(services, logger).NewRouter(opts...),
	}

	if cfg.HTTPAddress != "" || cfg.HTTPSAddress != "" {
		handlers.HTTP = http.NewHandler(handlers.Router, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(handlers.Router, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
