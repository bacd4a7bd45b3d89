// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"context"
	"time"

	"cloudeng.io/dateformat/settings"
	"cloudeng.io/logging/ctxlog"
)

// ConfigurationFunc returns the configuration to be used for a single
// call to Format.
type ConfigurationFunc func(ctx context.Context) settings.Configuration

// StaticConfiguration returns a ConfigurationFunc that always returns cfg.
func StaticConfiguration(cfg settings.Configuration) ConfigurationFunc {
	return func(context.Context) settings.Configuration {
		return cfg
	}
}

// StoreConfiguration returns a ConfigurationFunc that reads the
// configuration from store on every call. Errors are logged and the
// default configuration used.
func StoreConfiguration(store settings.Store) ConfigurationFunc {
	return func(ctx context.Context) settings.Configuration {
		cfg, err := settings.Load(ctx, store)
		if err != nil {
			ctxlog.Logger(ctx).Warn("failed to load settings, using defaults", "error", err)
		}
		return cfg
	}
}

// Decorator wraps a Formatter, replacing its Format method with one that
// substitutes period labels as per FormatWithPeriods. The remaining
// methods are forwarded to the wrapped Formatter.
type Decorator struct {
	inner  Formatter
	config ConfigurationFunc
	lookup PatternLookup
	opts   []Option
}

var _ Formatter = (*Decorator)(nil)

// NewDecorator returns a Decorator for inner. The inner formatter is used
// to render all pattern text other than the placeholders.
func NewDecorator(inner Formatter, config ConfigurationFunc, lookup PatternLookup, opts ...Option) *Decorator {
	return &Decorator{inner: inner, config: config, lookup: lookup, opts: opts}
}

func (d *Decorator) render(ctx context.Context, timestamp int64, pattern, timezone, locale string) string {
	return d.inner.Format(ctx, Request{
		Timestamp: timestamp,
		Kind:      Custom,
		Pattern:   pattern,
		Timezone:  timezone,
		Locale:    locale,
	})
}

// Format implements Formatter.
func (d *Decorator) Format(ctx context.Context, req Request) string {
	return FormatWithPeriods(ctx, req, d.config(ctx), d.lookup, d.render, d.opts...)
}

// FormatInterval implements Formatter.
func (d *Decorator) FormatInterval(ctx context.Context, interval time.Duration, granularity int, locale string) string {
	return d.inner.FormatInterval(ctx, interval, granularity, locale)
}

// SampleDateFormats implements Formatter.
func (d *Decorator) SampleDateFormats(ctx context.Context, locale string, timestamp int64, timezone string) map[string]string {
	return d.inner.SampleDateFormats(ctx, locale, timestamp, timezone)
}

// FormatTimeDiffUntil implements Formatter.
func (d *Decorator) FormatTimeDiffUntil(ctx context.Context, timestamp int64, opts DiffOptions) string {
	return d.inner.FormatTimeDiffUntil(ctx, timestamp, opts)
}

// FormatTimeDiffSince implements Formatter.
func (d *Decorator) FormatTimeDiffSince(ctx context.Context, timestamp int64, opts DiffOptions) string {
	return d.inner.FormatTimeDiffSince(ctx, timestamp, opts)
}

// FormatDiff implements Formatter.
func (d *Decorator) FormatDiff(ctx context.Context, from, to int64, opts DiffOptions) string {
	return d.inner.FormatDiff(ctx, from, to, opts)
}
