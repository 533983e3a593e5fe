// Package server provides the opt-in observability listener. When the
// application is started with --metrics-addr it exposes the Prometheus
// registry on /metrics and a liveness probe on /healthz, hardened by the
// security middleware and shut down gracefully with the application.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/fibspiral/internal/logging"
)

const (
	// readHeaderTimeout bounds header parsing to keep slowloris clients out.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout bounds the graceful drain once the context is done.
	shutdownTimeout = 5 * time.Second
)

// Server is the observability HTTP listener.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
}

// New creates a listener for the given address.
//
// Parameters:
//   - addr: The listen address, for example "127.0.0.1:9090".
//   - logger: Destination for lifecycle and request-rejection logs.
//
// Returns:
//   - *Server: A server ready to Run.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
}

// Run serves until ctx is canceled, then drains connections gracefully.
// It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics listener started", logging.String("addr", s.addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics listener shutdown failed", err)
			return err
		}
		s.logger.Info("metrics listener stopped")
		return nil
	}
}

// metricsMiddleware tracks in-flight and total request counts around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition format. Read-only.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request",
			logging.String("method", r.Method),
			logging.String("remote", r.RemoteAddr))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
