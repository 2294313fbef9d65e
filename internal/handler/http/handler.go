package http

import (
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// TraceIDGenerator produces identifiers for requests arriving without an
// X-Trace-ID header.
type TraceIDGenerator interface {
	Generate() string
}

type Handler struct {
	router   *router.Router
	traceIDs TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(router *router.Router, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		router:   router,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
