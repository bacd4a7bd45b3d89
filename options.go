// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"context"
	"time"

	"cloudeng.io/dateformat/period"
	"cloudeng.io/dateformat/place"
)

const (
	// Custom is the format kind that indicates that the pattern supplied
	// with a request is to be used rather than a named format.
	Custom = "custom"
	// DefaultKind is used for requests that do not specify a kind.
	DefaultKind = "medium"
	// FallbackKind is the named format used by Standard for unknown kinds.
	FallbackKind = "fallback"
	// DefaultTimezone is used when neither the request nor the options
	// specify a time zone and the local time zone has no IANA name.
	DefaultTimezone = "UTC"
	// DefaultLocale is used when neither the request nor the options
	// specify a locale.
	DefaultLocale = "en"
)

type options struct {
	timezone string
	locale   func(context.Context) string
	sunrise  period.SunriseFunc
	places   func(string) (place.Place, error)
	now      func() time.Time
	metrics  *Metrics
}

// Option represents an option to the formatters in this package.
type Option func(o *options)

// WithDefaultTimezone sets the time zone used for requests that do not
// specify one.
func WithDefaultTimezone(tz string) Option {
	return func(o *options) {
		o.timezone = tz
	}
}

// WithCurrentLocale sets the function used to obtain the locale for
// requests that do not specify one.
func WithCurrentLocale(fn func(context.Context) string) Option {
	return func(o *options) {
		o.locale = fn
	}
}

// WithSunrise overrides the function used to determine the time of sunrise.
func WithSunrise(fn period.SunriseFunc) Option {
	return func(o *options) {
		o.sunrise = fn
	}
}

// WithPlaces overrides the function used to determine the location
// associated with a time zone.
func WithPlaces(fn func(string) (place.Place, error)) Option {
	return func(o *options) {
		o.places = fn
	}
}

// WithClock overrides the function used to obtain the current time.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		o.now = fn
	}
}

// WithMetrics specifies the metrics to be updated.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// LocalTimezone returns the IANA name of the process's local time zone,
// or DefaultTimezone if it does not have one, as is the case when the
// zone is read from /etc/localtime.
func LocalTimezone() string {
	return timezoneName(time.Local)
}

func timezoneName(loc *time.Location) string {
	name := loc.String()
	if name == "" || name == "Local" {
		return DefaultTimezone
	}
	if _, err := time.LoadLocation(name); err != nil {
		return DefaultTimezone
	}
	return name
}

func newOptions(opts []Option) options {
	o := options{
		timezone: LocalTimezone(),
		locale:   func(context.Context) string { return DefaultLocale },
		places:   place.ForZone,
		now:      time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) effectiveTimezone(tz string) string {
	if len(tz) > 0 {
		return tz
	}
	return o.timezone
}

func (o options) effectiveLocale(ctx context.Context, locale string) string {
	if len(locale) > 0 {
		return locale
	}
	return o.locale(ctx)
}
