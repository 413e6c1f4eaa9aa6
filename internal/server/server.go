// Package server exposes the dashboard over HTTP: folio upload, dashboard
// data with filters as query parameters, and the localized CSV download.
// It is the surface a browser front end sits on.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"foliolens/internal/currency"
	"foliolens/internal/extract"
)

// Server wires the extraction client, the analysis cache and the router.
type Server struct {
	router    chi.Router
	extractor extract.Client
	results   *gocache.Cache
	rates     currency.Rates
	maxUpload int64
	log       *logrus.Logger
}

// Options configures a Server.
type Options struct {
	Extractor extract.Client
	Rates     currency.Rates
	// MaxUploadBytes caps the accepted PDF size. Zero means the 10MB
	// default the UI advertises.
	MaxUploadBytes int64
	// ResultTTL is how long an uploaded analysis stays addressable.
	ResultTTL time.Duration
	Logger    *logrus.Logger
}

const defaultMaxUploadBytes = 10 << 20

// New creates a Server with its routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	if opts.ResultTTL <= 0 {
		opts.ResultTTL = time.Hour
	}

	s := &Server{
		extractor: opts.Extractor,
		results:   gocache.New(opts.ResultTTL, opts.ResultTTL),
		rates:     opts.Rates,
		maxUpload: opts.MaxUploadBytes,
		log:       opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/folios", s.handleUpload)
		r.Get("/folios/{id}/dashboard", s.handleDashboard)
		r.Get("/folios/{id}/export.csv", s.handleExport)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler, usable directly in tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until it fails or the listener closes.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// Extraction calls ride on the request, so the write timeout has
		// to outlast the model timeout.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  time.Minute,
	}

	s.log.WithField("addr", addr).Info("Starting HTTP server")
	return srv.ListenAndServe()
}

// logRequests is a minimal structured request logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Info("Request handled")
	})
}
