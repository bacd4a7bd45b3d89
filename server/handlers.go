// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cloudeng.io/dateformat"
	"cloudeng.io/dateformat/patterns"
	"cloudeng.io/dateformat/settings"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-playground/validator/v10"
)

// FormatResponse is returned by GET /format.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// SamplesResponse is returned by GET /samples.
type SamplesResponse struct {
	Samples map[string]string `json:"samples"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

var (
	formatEndpoint   jsonapi.Endpoint[struct{}, FormatResponse]
	samplesEndpoint  jsonapi.Endpoint[struct{}, SamplesResponse]
	formatsEndpoint  jsonapi.Endpoint[struct{}, []patterns.Format]
	settingsEndpoint jsonapi.Endpoint[settings.Configuration, settings.Configuration]
	healthEndpoint   jsonapi.Endpoint[struct{}, HealthResponse]
)

// formatQuery represents the query parameters accepted by GET /format
// and GET /samples, the names follow those used by Drupal.
type formatQuery struct {
	Timestamp string `validate:"omitempty,numeric"`
	Type      string `validate:"omitempty,max=64"`
	Format    string `validate:"max=256"`
	Timezone  string `validate:"omitempty,timezone"`
	Langcode  string `validate:"omitempty,bcp47_language_tag"`
}

func parseFormatQuery(values url.Values) formatQuery {
	return formatQuery{
		Timestamp: values.Get("timestamp"),
		Type:      values.Get("type"),
		Format:    values.Get("format"),
		Timezone:  values.Get("timezone"),
		Langcode:  values.Get("langcode"),
	}
}

// validationMessage returns a message listing the fields that failed
// validation without leaking internal struct names.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: must be at most %s characters", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: invalid %s", field, e.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}

func (s *Server) timestamp(q formatQuery) (int64, error) {
	if len(q.Timestamp) == 0 {
		return s.now().Unix(), nil
	}
	return strconv.ParseInt(q.Timestamp, 10, 64)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := healthEndpoint.WriteResponse(w, HealthResponse{Status: "ok"}); err != nil {
		ctxlog.Logger(r.Context()).Warn("failed to write response", "error", err)
	}
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := parseFormatQuery(r.URL.Query())
	if err := s.validate.Struct(q); err != nil {
		jsonapi.WriteErrorMsg(w, validationMessage(err), http.StatusBadRequest)
		return
	}
	ts, err := s.timestamp(q)
	if err != nil {
		jsonapi.WriteErrorMsg(w, "timestamp: must be an integer", http.StatusBadRequest)
		return
	}
	formatted := s.formatter.Format(ctx, dateformat.Request{
		Timestamp: ts,
		Kind:      q.Type,
		Pattern:   q.Format,
		Timezone:  q.Timezone,
		Locale:    q.Langcode,
	})
	if err := formatEndpoint.WriteResponse(w, FormatResponse{Formatted: formatted}); err != nil {
		ctxlog.Logger(ctx).Warn("failed to write response", "error", err)
	}
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := parseFormatQuery(r.URL.Query())
	if err := s.validate.Struct(q); err != nil {
		jsonapi.WriteErrorMsg(w, validationMessage(err), http.StatusBadRequest)
		return
	}
	ts, err := s.timestamp(q)
	if err != nil {
		jsonapi.WriteErrorMsg(w, "timestamp: must be an integer", http.StatusBadRequest)
		return
	}
	samples := s.formatter.SampleDateFormats(ctx, q.Langcode, ts, q.Timezone)
	if err := samplesEndpoint.WriteResponse(w, SamplesResponse{Samples: samples}); err != nil {
		ctxlog.Logger(ctx).Warn("failed to write response", "error", err)
	}
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	if err := formatsEndpoint.WriteResponse(w, s.registry.Formats()); err != nil {
		ctxlog.Logger(r.Context()).Warn("failed to write response", "error", err)
	}
}

func (s *Server) writeSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg, err := settings.Load(ctx, s.store)
	if err != nil {
		ctxlog.Logger(ctx).Error("failed to load settings", "error", err)
		jsonapi.WriteErrorMsg(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	if err := settingsEndpoint.WriteResponse(w, cfg); err != nil {
		ctxlog.Logger(ctx).Warn("failed to write response", "error", err)
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.writeSettings(w, r)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var cfg settings.Configuration
	if err := settingsEndpoint.ParseRequest(w, r, &cfg); err != nil {
		ctxlog.Logger(ctx).Info("invalid settings request", "error", err)
		return
	}
	if err := cfg.Normalize().Validate(); err != nil {
		ctxlog.Logger(ctx).Info("settings rejected", "error", err)
		jsonapi.WriteErrorMsg(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := settings.Save(ctx, s.store, cfg); err != nil {
		ctxlog.Logger(ctx).Error("failed to save settings", "error", err)
		jsonapi.WriteErrorMsg(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	s.writeSettings(w, r)
}

func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := settings.Reset(ctx, s.store); err != nil {
		ctxlog.Logger(ctx).Error("failed to reset settings", "error", err)
		jsonapi.WriteErrorMsg(w, "failed to reset settings", http.StatusInternalServerError)
		return
	}
	s.writeSettings(w, r)
}
