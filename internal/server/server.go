// Package server exposes coordinate extraction and report generation over
// HTTP. User and session management live in a separate service; this
// surface is deliberately unauthenticated plumbing behind it.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sawala-tech/lembar/internal/extract"
	"github.com/sawala-tech/lembar/internal/inspect"
	"github.com/sawala-tech/lembar/internal/report"
)

// Extractor is the extraction dependency of the HTTP surface.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) extract.Result
}

// ReportGenerator is the report dependency of the HTTP surface.
type ReportGenerator interface {
	Generate(ctx context.Context, entries []inspect.Entry, templatePath string, opts report.Options) (string, error)
}

// Config holds the server settings.
type Config struct {
	Host            string
	Port            int
	CORSOrigin      string
	MaxUploadMB     int64
	Timeout         time.Duration
	ShutdownTimeout time.Duration
	TemplatePath    string
}

// Server serves the extraction and report API.
type Server struct {
	extractor    Extractor
	generator    ReportGenerator
	templatePath string
	corsOrigin   string
	maxUploadMB  int64
	logger       *slog.Logger
	httpServer   *http.Server
}

// New creates a Server. A nil logger discards output.
func New(cfg Config, extractor Extractor, generator ReportGenerator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		extractor:    extractor,
		generator:    generator,
		templatePath: cfg.TemplatePath,
		corsOrigin:   cfg.CORSOrigin,
		maxUploadMB:  cfg.MaxUploadMB,
		logger:       logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.withMiddleware(s.healthHandler))
	mux.HandleFunc("/api/v1/extract", s.withMiddleware(s.extractHandler))
	mux.HandleFunc("/api/v1/report", s.withMiddleware(s.reportHandler))
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           mux,
		ReadTimeout:       cfg.Timeout,
		WriteTimeout:      cfg.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
