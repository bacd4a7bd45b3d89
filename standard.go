// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"context"
	"time"

	"cloudeng.io/dateformat/patterns"
	"cloudeng.io/dateformat/phpdate"
	"cloudeng.io/logging/ctxlog"
)

// fallbackPattern is used if the registry has no FallbackKind format.
const fallbackPattern = "D, m/d/Y - H:i"

// Standard is a Formatter that renders PHP date() style patterns using
// the phpdate package and named formats from a patterns.Registry.
type Standard struct {
	registry *patterns.Registry
	opts     options
}

var _ Formatter = (*Standard)(nil)

// NewStandard returns a new Standard formatter.
func NewStandard(registry *patterns.Registry, opts ...Option) *Standard {
	return &Standard{registry: registry, opts: newOptions(opts)}
}

// location returns the time.Location for tz, or UTC if tz cannot be
// loaded.
func (s *Standard) location(ctx context.Context, tz string) *time.Location {
	loc, err := time.LoadLocation(s.opts.effectiveTimezone(tz))
	if err != nil {
		ctxlog.Logger(ctx).Warn("unknown time zone, using UTC", "timezone", tz, "error", err)
		return time.UTC
	}
	return loc
}

func (s *Standard) pattern(ctx context.Context, kind string) string {
	if p, ok := s.registry.Lookup(ctx, kind); ok {
		return p
	}
	if p, ok := s.registry.Lookup(ctx, FallbackKind); ok {
		return p
	}
	return fallbackPattern
}

// Format implements Formatter. Unknown named formats are rendered using
// the fallback format.
func (s *Standard) Format(ctx context.Context, req Request) string {
	var layout string
	if kind := req.kind(); kind == Custom {
		layout = req.Pattern
	} else {
		layout = s.pattern(ctx, kind)
	}
	if len(layout) == 0 {
		return ""
	}
	when := time.Unix(req.Timestamp, 0).In(s.location(ctx, req.Timezone))
	names := phpdate.NamesFor(s.opts.effectiveLocale(ctx, req.Locale))
	return phpdate.Format(when, layout, names)
}

// sampleDirectives are the directives displayed by SampleDateFormats.
const sampleDirectives = "dDjlNSwzWFmMntLoYyaABgGhHisuveIOPpTZcrU"

// SampleDateFormats implements Formatter. A zero timestamp is replaced
// by the current time.
func (s *Standard) SampleDateFormats(ctx context.Context, locale string, timestamp int64, timezone string) map[string]string {
	if timestamp == 0 {
		timestamp = s.opts.now().Unix()
	}
	samples := make(map[string]string, len(sampleDirectives))
	for _, d := range sampleDirectives {
		samples[string(d)] = s.Format(ctx, Request{
			Timestamp: timestamp,
			Kind:      Custom,
			Pattern:   string(d),
			Timezone:  timezone,
			Locale:    locale,
		})
	}
	return samples
}

// FormatInterval implements Formatter.
func (s *Standard) FormatInterval(_ context.Context, interval time.Duration, granularity int, _ string) string {
	return formatInterval(interval, granularity)
}

// FormatTimeDiffSince implements Formatter.
func (s *Standard) FormatTimeDiffSince(ctx context.Context, timestamp int64, opts DiffOptions) string {
	return s.FormatDiff(ctx, timestamp, s.opts.now().Unix(), opts)
}

// FormatTimeDiffUntil implements Formatter.
func (s *Standard) FormatTimeDiffUntil(ctx context.Context, timestamp int64, opts DiffOptions) string {
	return s.FormatDiff(ctx, s.opts.now().Unix(), timestamp, opts)
}

// FormatDiff implements Formatter. The difference is computed in the
// default time zone so that calendar months and years are counted
// correctly.
func (s *Standard) FormatDiff(ctx context.Context, from, to int64, opts DiffOptions) string {
	if opts.Strict && to < from {
		return zeroDiff
	}
	loc := s.location(ctx, "")
	return formatDiff(time.Unix(from, 0).In(loc), time.Unix(to, 0).In(loc), opts.granularity())
}
