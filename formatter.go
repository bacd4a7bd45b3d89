// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"context"
	"time"
)

// Request represents a single request to format a timestamp. Empty
// strings denote values that were not supplied.
type Request struct {
	// Timestamp in seconds since the Unix epoch.
	Timestamp int64
	// Kind is either the name of a format, eg. "medium", or Custom.
	Kind string
	// Pattern is used when Kind is Custom.
	Pattern string
	// Timezone is an IANA time zone name.
	Timezone string
	// Locale is a BCP 47 language tag or Drupal langcode.
	Locale string
}

func (r Request) kind() string {
	if len(r.Kind) == 0 {
		return DefaultKind
	}
	return r.Kind
}

// DiffOptions controls the formatting of differences between times.
type DiffOptions struct {
	// Granularity is the number of units to display, 2 if zero.
	Granularity int
	// Strict causes differences that are in the wrong direction,
	// eg. a 'since' time that is in the future, to be displayed as
	// zero.
	Strict bool
	// Locale is the locale to use.
	Locale string
}

func (o DiffOptions) granularity() int {
	if o.Granularity <= 0 {
		return 2
	}
	return o.Granularity
}

// Formatter enumerates the operations supported by a date formatter.
type Formatter interface {
	// Format formats the request's timestamp.
	Format(ctx context.Context, req Request) string
	// FormatInterval formats a duration as a human readable string,
	// eg. "1 hour 5 min", using at most granularity units.
	FormatInterval(ctx context.Context, interval time.Duration, granularity int, locale string) string
	// SampleDateFormats returns every supported format directive rendered
	// for the given timestamp.
	SampleDateFormats(ctx context.Context, locale string, timestamp int64, timezone string) map[string]string
	// FormatTimeDiffUntil formats the time remaining until timestamp.
	FormatTimeDiffUntil(ctx context.Context, timestamp int64, opts DiffOptions) string
	// FormatTimeDiffSince formats the time elapsed since timestamp.
	FormatTimeDiffSince(ctx context.Context, timestamp int64, opts DiffOptions) string
	// FormatDiff formats the difference between from and to.
	FormatDiff(ctx context.Context, from, to int64, opts DiffOptions) string
}

// PatternLookup returns the pattern for a named format.
type PatternLookup func(ctx context.Context, name string) (string, bool)

// RenderFunc formats a timestamp using a custom pattern that contains
// no placeholders.
type RenderFunc func(ctx context.Context, timestamp int64, pattern, timezone, locale string) string
