package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/workers"
)

type server struct {
	httpServer    *httpServer
	httpsServer   *httpServer
	metricsServer *httpServer
	gRPCServer    *grpcServer

	metrics http.Handler
	workers *workers.Workers

	logger *logger.Logger
}

// Option configures optional parts of the server.
type Option func(*server)

// WithMetrics serves h on the configured metrics address.
func WithMetrics(h http.Handler) Option {
	return func(s *server) {
		s.metrics = h
	}
}

// WithWorkers runs w for the lifetime of the server.
func WithWorkers(w *workers.Workers) Option {
	return func(s *server) {
		s.workers = w
	}
}

// NewServer opens a listener for every configured address. The plaintext
// and TLS listeners share the same HTTP handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	for _, opt := range opts {
		opt(servers)
	}

	if err := servers.listen(handlers, cfg); err != nil {
		servers.closeListeners()
		return nil, err
	}

	if servers.httpServer == nil && servers.httpsServer == nil && servers.gRPCServer == nil {
		servers.closeListeners()
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) listen(handlers *handler.Handlers, cfg config.Server) error {
	var err error

	if handlers.HTTP != nil {
		mux := handlers.HTTP.Init()

		if cfg.HTTPAddress != "" {
			if s.httpServer, err = newHTTPServer("HTTP", cfg.HTTPAddress, mux, cfg.RequestTimeout, s.logger); err != nil {
				return err
			}
		}
		if cfg.HTTPSAddress != "" {
			if s.httpsServer, err = newHTTPSServer(cfg.HTTPSAddress, mux, cfg.RequestTimeout, cfg.TLSCertFile, cfg.TLSKeyFile, s.logger); err != nil {
				return err
			}
		}
	}

	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		if s.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, s.logger); err != nil {
			return err
		}
	}

	if s.metrics != nil && cfg.MetricsAddress != "" {
		if s.metricsServer, err = newMetricsServer(cfg.MetricsAddress, s.metrics, cfg.RequestTimeout, s.logger); err != nil {
			return err
		}
	}

	return nil
}

func (s *server) closeListeners() {
	for _, h := range []*httpServer{s.httpServer, s.httpsServer, s.metricsServer} {
		if h != nil {
			_ = h.listener.Close()
		}
	}
	if s.gRPCServer != nil {
		_ = s.gRPCServer.gRPCNetListener.Close()
	}
}

func (s *server) servers() []listener {
	var all []listener
	if s.httpServer != nil {
		all = append(all, s.httpServer)
	}
	if s.httpsServer != nil {
		all = append(all, s.httpsServer)
	}
	if s.gRPCServer != nil {
		all = append(all, s.gRPCServer)
	}
	if s.metricsServer != nil {
		all = append(all, s.metricsServer)
	}

	return all
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, srv := range s.servers() {
		srv.Shutdown()
	}
}

// run serves until ctx is done, then shuts every server down and waits for
// the workers to return.
func (s *server) run(ctx context.Context) error {
	all := s.servers()
	if len(all) == 0 {
		return errors.New("no servers to run")
	}

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(ctx)
		}
	}()

	for _, srv := range all {
		s.logger.Info().Stringer("addr", srv.Addr()).Msg("listening")
		go srv.RunServer()
	}
	s.logger.Info().Int("servers", len(all)).Msg("servers launched")

	<-ctx.Done()

	s.Shutdown()
	<-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
