// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"context"
	"strings"
	"time"

	"cloudeng.io/dateformat/pattern"
	"cloudeng.io/dateformat/period"
	"cloudeng.io/dateformat/settings"
	"cloudeng.io/logging/ctxlog"
)

// FormatWithPeriods formats req, substituting the label of the period of
// the day that req.Timestamp falls within for every occurrence of
// cfg.Character in the request's pattern. All other pattern text is
// rendered by render using the Custom format kind. The period is
// determined using the location of the request's time zone and is
// computed at most once per call. It never fails: an unknown format
// name results in an empty pattern and a period that cannot be determined
// results in an empty label.
func FormatWithPeriods(ctx context.Context, req Request, cfg settings.Configuration, lookup PatternLookup, render RenderFunc, opts ...Option) string {
	o := newOptions(opts)
	tz := o.effectiveTimezone(req.Timezone)
	locale := o.effectiveLocale(ctx, req.Locale)
	kind := req.kind()
	o.metrics.format(kind)

	var layout string
	if kind == Custom {
		layout = req.Pattern
	} else if lookup != nil {
		p, ok := lookup(ctx, kind)
		if !ok {
			o.metrics.unknownPattern()
			ctxlog.Logger(ctx).Debug("unknown date format", "format", kind)
		}
		layout = p
	}

	fragments := pattern.Tokenize(cfg.Character, layout)
	var label string
	if pattern.Placeholders(fragments) > 0 {
		label = o.periodLabel(ctx, req.Timestamp, tz, cfg.Labels)
	}

	var out strings.Builder
	for _, f := range fragments {
		if f.IsPlaceholder() {
			out.WriteString(label)
			continue
		}
		out.WriteString(render(ctx, req.Timestamp, f.Text, tz, locale))
	}
	return out.String()
}

// periodLabel returns the label for the period containing timestamp at the
// location of the time zone tz, or the empty string if it cannot be
// determined.
func (o options) periodLabel(ctx context.Context, timestamp int64, tz string, labels []string) string {
	logger := ctxlog.Logger(ctx)
	p, err := o.places(tz)
	if err != nil {
		o.metrics.resolutionFailure()
		logger.Info("no location for time zone", "timezone", tz, "error", err)
		return ""
	}
	loc := p.TZ
	if loc == nil {
		loc = time.UTC
	}
	when := time.Unix(timestamp, 0).In(loc)
	label, err := period.Resolver{Sunrise: o.sunrise}.Resolve(when, p.Latitude, p.Longitude, labels)
	if err != nil {
		o.metrics.resolutionFailure()
		logger.Info("failed to determine period", "timezone", tz, "error", err)
		return ""
	}
	return label
}
