// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package server provides an HTTP API for formatting dates with period
// labels and for managing the period label settings.
package server

import (
	"context"
	"net/http"
	"time"

	"cloudeng.io/dateformat"
	"cloudeng.io/dateformat/patterns"
	"cloudeng.io/dateformat/settings"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server implements the HTTP API.
type Server struct {
	formatter dateformat.Formatter
	store     settings.Store
	registry  *patterns.Registry
	gatherer  prometheus.Gatherer
	now       func() time.Time
	validate  *validator.Validate
}

// Option represents an option to New.
type Option func(s *Server)

// WithGatherer specifies the source of the metrics served on /metrics,
// prometheus.DefaultGatherer is used by default.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithClock overrides the function used to obtain the current time.
func WithClock(fn func() time.Time) Option {
	return func(s *Server) {
		s.now = fn
	}
}

// New returns a new Server that uses formatter to format dates, store
// for the period settings and registry for the named formats.
func New(formatter dateformat.Formatter, store settings.Store, registry *patterns.Registry, opts ...Option) *Server {
	s := &Server{
		formatter: formatter,
		store:     store,
		registry:  registry,
		gatherer:  prometheus.DefaultGatherer,
		now:       time.Now,
		validate:  validator.New(),
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Handler returns the http.Handler for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Get("/format", s.handleFormat)
	r.Get("/samples", s.handleSamples)
	r.Get("/formats", s.handleFormats)
	r.Get("/settings", s.handleGetSettings)
	r.Put("/settings", s.handlePutSettings)
	r.Post("/settings/reset", s.handleResetSettings)
	return r
}

// Serve runs the server on addr until ctx is canceled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, srv, err := webapp.NewHTTPServer(ctx, addr, s.Handler())
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("serving", "addr", ln.Addr().String())
	return webapp.ServeWithShutdown(ctx, ln, srv, 5*time.Second)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
			return
		}
		ctxlog.Logger(r.Context()).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
