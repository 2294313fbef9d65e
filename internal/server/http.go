package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// httpServer serves one listener, in plaintext or with TLS when the
// server carries a TLS config.
type httpServer struct {
	name     string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, readTimeout time.Duration, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", errListening, name, address, err)
	}

	return &httpServer{
		name: name,
		server: &http.Server{
			Handler:     handler,
			ReadTimeout: readTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

// newHTTPSServer loads the key pair before binding, so a bad certificate
// fails startup instead of leaving an open port that never answers.
func newHTTPSServer(address string, handler http.Handler, readTimeout time.Duration, certFile, keyFile string, logger *logger.Logger) (*httpServer, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errLoadingCertificate, err)
	}

	s, err := newHTTPServer("HTTPS", address, handler, readTimeout, logger)
	if err != nil {
		return nil, err
	}

	s.server.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return s, nil
}

// Addr returns the bound listener address.
func (h *httpServer) Addr() net.Addr {
	return h.listener.Addr()
}

func (h *httpServer) RunServer() {
	var err error
	if h.server.TLSConfig != nil {
		err = h.server.ServeTLS(h.listener, "", "")
	} else {
		err = h.server.Serve(h.listener)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Str("server", h.name).Msg("server stopped serving")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	h.logger.Info().Str("server", h.name).Msg("server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Str("server", h.name).Msg("error shutting down server")
	}
}
