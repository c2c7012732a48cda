// Package httpapi provides the vvsql HTTP API server: POST /api/v1/query,
// POST /api/v1/parse, GET /api/v1/health, GET /api/v1/version, and GET /.
// Grounded on the teacher's internal/ui.Server (chi router, errgroup-driven
// cancelable Serve loop) and original_source/src/rest.rs (route shapes and
// JSON response envelopes).
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vvsql/vvsql/pkg/tableio"
)

// Config configures a Server.
type Config struct {
	Addr       string
	CORSOrigin string
	Registry   *tableio.Registry
	Reader     string
	Version    string
	Logger     *slog.Logger
}

// Server is the vvsql HTTP API server.
type Server struct {
	addr     string
	registry *tableio.Registry
	reader   string
	version  string
	logger   *slog.Logger
	handler  http.Handler
}

// NewServer builds a Server from cfg, defaulting an unset logger to a
// stderr text handler, matching internal/lsp/server.go's default-logger
// pattern.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	s := &Server{
		addr:     cfg.Addr,
		registry: cfg.Registry,
		reader:   cfg.Reader,
		version:  version,
		logger:   logger,
	}
	s.handler = s.routes(cfg.CORSOrigin)
	return s
}

// Handler returns the server's http.Handler, for tests that drive it
// in-process without binding a real listener.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes(corsOrigin string) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		requestIDHeader,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleRoot)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/query", s.handleQuery)
		r.Post("/parse", s.handleParse)
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
	})

	return r
}

// requestIDHeader echoes chi's per-request id (set by middleware.RequestID)
// back to the client, mirroring original_source's request tracing.
func requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// Serve starts the HTTP server and blocks until ctx is cancelled, per the
// teacher's internal/ui.Server.Serve errgroup pattern.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting vvsql HTTP API", "addr", s.addr)

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Debug("shutting down vvsql HTTP API")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
