// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package patterns provides a registry of named date format patterns, such
// as "short", "medium" or "html_date", expressed using PHP date()
// directives. Patterns that are not held in memory may be obtained from
// a Source, the results of which are cached.
package patterns

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNotFound is returned by a Source for unknown pattern names.
var ErrNotFound = errors.New("date format not found")

// ErrLocked is returned when attempting to modify a locked format.
var ErrLocked = errors.New("date format is locked")

// Format represents a named date format.
type Format struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label" json:"label"`
	Pattern string `yaml:"pattern" json:"pattern"`
	Locked  bool   `yaml:"locked" json:"locked"`
}

// Builtin returns the formats that are always available.
func Builtin() []Format {
	return []Format{
		{ID: "fallback", Label: "Fallback date format", Pattern: "D, m/d/Y - H:i", Locked: true},
		{ID: "html_date", Label: "HTML Date", Pattern: "Y-m-d", Locked: true},
		{ID: "html_datetime", Label: "HTML Datetime", Pattern: `Y-m-d\TH:i:sO`, Locked: true},
		{ID: "html_month", Label: "HTML Month", Pattern: "Y-m", Locked: true},
		{ID: "html_time", Label: "HTML Time", Pattern: "H:i:s", Locked: true},
		{ID: "html_week", Label: "HTML Week", Pattern: `Y-\WW`, Locked: true},
		{ID: "html_year", Label: "HTML Year", Pattern: "Y", Locked: true},
		{ID: "html_yearless_date", Label: "HTML Yearless date", Pattern: "m-d", Locked: true},
		{ID: "long", Label: "Default long date", Pattern: "l, F j, Y - H:i"},
		{ID: "medium", Label: "Default medium date", Pattern: "D, m/d/Y - H:i"},
		{ID: "short", Label: "Default short date", Pattern: "m/d/Y - H:i"},
	}
}

// Source provides patterns that are not registered in memory.
type Source interface {
	// Pattern returns the pattern for id or ErrNotFound.
	Pattern(ctx context.Context, id string) (string, error)
}

type cached struct {
	pattern string
	found   bool
}

// Registry holds named formats. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	source  Source
	cache   *lru.Cache[string, cached]
}

type options struct {
	source    Source
	cacheSize int
	builtin   bool
}

// Option represents an option to NewRegistry.
type Option func(o *options)

// WithSource specifies a Source to be consulted for names that are not
// registered.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithCacheSize sets the number of entries retained from the Source.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithoutBuiltin creates a registry that does not contain the builtin
// formats.
func WithoutBuiltin() Option {
	return func(o *options) {
		o.builtin = false
	}
}

// NewRegistry returns a new Registry containing the builtin formats.
func NewRegistry(opts ...Option) *Registry {
	o := options{cacheSize: 128, builtin: true}
	for _, fn := range opts {
		fn(&o)
	}
	r := &Registry{
		formats: map[string]Format{},
		source:  o.source,
	}
	if o.source != nil {
		cache, err := lru.New[string, cached](max(o.cacheSize, 1))
		if err != nil {
			panic(err)
		}
		r.cache = cache
	}
	if o.builtin {
		for _, f := range Builtin() {
			r.formats[f.ID] = f
		}
	}
	return r
}

// Lookup returns the pattern for the named format. Errors encountered
// consulting the Source are logged and reported as the format not being
// found.
func (r *Registry) Lookup(ctx context.Context, id string) (string, bool) {
	if f, ok := r.Get(id); ok {
		return f.Pattern, true
	}
	if r.source == nil {
		ctxlog.Logger(ctx).Debug("unknown date format", "format", id)
		return "", false
	}
	if c, ok := r.cache.Get(id); ok {
		return c.pattern, c.found
	}
	p, err := r.source.Pattern(ctx, id)
	switch {
	case err == nil:
		r.cache.Add(id, cached{pattern: p, found: true})
		return p, true
	case errors.Is(err, ErrNotFound):
		r.cache.Add(id, cached{})
		ctxlog.Logger(ctx).Debug("unknown date format", "format", id)
	default:
		ctxlog.Logger(ctx).Warn("failed to load date format", "format", id, "error", err)
	}
	return "", false
}

// Get returns the registered format, it does not consult the Source.
func (r *Registry) Get(id string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[id]
	return f, ok
}

// Add registers, or replaces, a format. Locked formats cannot be replaced.
func (r *Registry) Add(f Format) error {
	if len(strings.TrimSpace(f.ID)) == 0 {
		return fmt.Errorf("date format has no id")
	}
	if len(f.Pattern) == 0 {
		return fmt.Errorf("date format %q has no pattern", f.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.formats[f.ID]; ok && existing.Locked {
		return fmt.Errorf("%q: %w", f.ID, ErrLocked)
	}
	r.formats[f.ID] = f
	if r.cache != nil {
		r.cache.Remove(f.ID)
	}
	return nil
}

// Remove removes a registered format. Locked formats cannot be removed.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.formats[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if f.Locked {
		return fmt.Errorf("%q: %w", id, ErrLocked)
	}
	delete(r.formats, id)
	return nil
}

// Formats returns all registered formats sorted by ID.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formats))
	for _, f := range r.formats {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Format) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Purge discards any cached results from the Source.
func (r *Registry) Purge() {
	if r.cache != nil {
		r.cache.Purge()
	}
}

// ParseFormats parses a YAML list of formats.
func ParseFormats(data []byte) ([]Format, error) {
	var formats []Format
	if err := cmdyaml.ParseConfigStrict(data, &formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// LoadFile adds all of the formats in the YAML file to the registry.
func (r *Registry) LoadFile(ctx context.Context, filename string) error {
	var formats []Format
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &formats); err != nil {
		return err
	}
	errs := &errors.M{}
	for _, f := range formats {
		errs.Append(r.Add(f))
	}
	return errs.Err()
}
