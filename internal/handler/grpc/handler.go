package grpc

import (
	"context"
	"net/http"
	"net/url"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Handler is the root gRPC transport handler.
//
// It serves the Dispatcher service over the same router as the HTTP
// transport, so a DispatchRequest reaches exactly the handlers an HTTP
// request with the same path, query, method and body would.
type Handler struct {
	router *router.Router
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] dispatching into r.
func NewHandler(r *router.Router, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		router: r,
		health: health.NewServer(),
		logger: logger,
	}
}

// Register adds the Dispatcher and health services to s and marks both as
// serving.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&DispatcherServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(DispatcherServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every health status to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// ServerOptions returns the codec and interceptor options the server must be
// created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withRecovery),
	}
}

// Dispatch runs in through the router. Dispatch failures are reported in
// the response status, never as a gRPC error.
func (h *Handler) Dispatch(ctx context.Context, in *models.DispatchRequest) (*models.DispatchResponse, error) {
	query := make(url.Values, len(in.Query))
	for k, v := range in.Query {
		query.Set(k, v)
	}

	req := router.NewRequest(in.Path, query, in.Method, http.Header(in.Headers), in.Body)
	status, body := h.router.Serve(ctx, req)

	return &models.DispatchResponse{StatusCode: status, Body: body}, nil
}
