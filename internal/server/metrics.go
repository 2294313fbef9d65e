package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

const metricsPath = "/metrics"

func newMetricsServer(address string, metrics http.Handler, readTimeout time.Duration, logger *logger.Logger) (*httpServer, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, metricsPath, metrics)

	return newHTTPServer("metrics", address, router, readTimeout, logger)
}
