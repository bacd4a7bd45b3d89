// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cloudeng.io/dateformat"
	"cloudeng.io/dateformat/patterns"
	"cloudeng.io/dateformat/settings"
)

// fakeFormatter records the methods called on it.
type fakeFormatter struct {
	calls []string
}

func (f *fakeFormatter) record(format string, args ...any) string {
	call := fmt.Sprintf(format, args...)
	f.calls = append(f.calls, call)
	return call
}

func (f *fakeFormatter) Format(_ context.Context, req dateformat.Request) string {
	return f.record("Format(%v,%v,%q,%v,%v)", req.Timestamp, req.Kind, req.Pattern, req.Timezone, req.Locale)
}

func (f *fakeFormatter) FormatInterval(_ context.Context, interval time.Duration, granularity int, locale string) string {
	return f.record("FormatInterval(%v,%v,%v)", interval, granularity, locale)
}

func (f *fakeFormatter) SampleDateFormats(_ context.Context, locale string, timestamp int64, timezone string) map[string]string {
	return map[string]string{"call": f.record("SampleDateFormats(%v,%v,%v)", locale, timestamp, timezone)}
}

func (f *fakeFormatter) FormatTimeDiffUntil(_ context.Context, timestamp int64, opts dateformat.DiffOptions) string {
	return f.record("FormatTimeDiffUntil(%v,%+v)", timestamp, opts)
}

func (f *fakeFormatter) FormatTimeDiffSince(_ context.Context, timestamp int64, opts dateformat.DiffOptions) string {
	return f.record("FormatTimeDiffSince(%v,%+v)", timestamp, opts)
}

func (f *fakeFormatter) FormatDiff(_ context.Context, from, to int64, opts dateformat.DiffOptions) string {
	return f.record("FormatDiff(%v,%v,%+v)", from, to, opts)
}

func TestDecoratorForwarding(t *testing.T) {
	ctx := context.Background()
	inner := &fakeFormatter{}
	fs := &fixedSunrise{}
	dec := dateformat.NewDecorator(inner, dateformat.StaticConfiguration(settings.Defaults()), nil,
		dateformat.WithSunrise(fs.sunrise))

	opts := dateformat.DiffOptions{Granularity: 3, Strict: true, Locale: "de"}
	for i, tc := range []struct {
		got  string
		want string
	}{
		{dec.FormatInterval(ctx, time.Hour, 2, "fr"), "FormatInterval(1h0m0s,2,fr)"},
		{dec.SampleDateFormats(ctx, "en", 10, "UTC")["call"], "SampleDateFormats(en,10,UTC)"},
		{dec.FormatTimeDiffUntil(ctx, 20, opts), "FormatTimeDiffUntil(20,{Granularity:3 Strict:true Locale:de})"},
		{dec.FormatTimeDiffSince(ctx, 30, opts), "FormatTimeDiffSince(30,{Granularity:3 Strict:true Locale:de})"},
		{dec.FormatDiff(ctx, 40, 50, opts), "FormatDiff(40,50,{Granularity:3 Strict:true Locale:de})"},
	} {
		if tc.got != tc.want {
			t.Errorf("%v: got %q, want %q", i, tc.got, tc.want)
		}
	}
	if got, want := len(inner.calls), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fs.calls, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Format renders the literal text using the inner formatter's custom
	// format.
	inner.calls = nil
	got := dec.Format(ctx, dateformat.Request{
		Timestamp: at(0),
		Kind:      dateformat.Custom,
		Pattern:   "@, Y",
		Timezone:  "UTC",
		Locale:    "de",
	})
	want := fmt.Sprintf(`CryerFormat(%v,custom,", Y",UTC,de)`, at(0))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := len(inner.calls), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecorator(t *testing.T) {
	ctx := context.Background()
	registry := patterns.NewRegistry()
	if err := registry.Add(patterns.Format{ID: "vedic", Label: "Vedic", Pattern: `@ \a\t H:i`}); err != nil {
		t.Fatal(err)
	}
	std := dateformat.NewStandard(registry)
	fs := &fixedSunrise{}
	dec := dateformat.NewDecorator(std, dateformat.StaticConfiguration(settings.Defaults()),
		registry.Lookup, dateformat.WithSunrise(fs.sunrise))

	for i, tc := range []struct {
		req  dateformat.Request
		want string
	}{
		{dateformat.Request{Timestamp: at(0), Kind: dateformat.Custom, Pattern: "@, Y-m-d"}, "Cryer, 2024-03-20"},
		{dateformat.Request{Timestamp: at(time.Hour), Kind: "vedic"}, "Serpent at 07:12"},
		{dateformat.Request{Timestamp: at(time.Hour), Kind: "vedic", Timezone: "Asia/Kolkata"}, "Serpent at 12:42"},
		{dateformat.Request{Timestamp: at(0), Kind: "html_date"}, "2024-03-20"},
		{dateformat.Request{Timestamp: at(0), Kind: "nonesuch"}, ""},
	} {
		if got, want := dec.Format(ctx, tc.req), tc.want; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}

	// The inner formatter's behaviour is unchanged.
	if got, want := dec.FormatInterval(ctx, 90*time.Second, 2, "en"), "1 min 30 sec"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := dec.Format(ctx, dateformat.Request{Timestamp: at(0), Kind: "nonesuch"}),
		std.Format(ctx, dateformat.Request{Timestamp: at(0), Kind: "nonesuch"}); got == want {
		t.Errorf("unknown formats should not use the fallback format: %q", got)
	}
}

func TestDecoratorStoreConfiguration(t *testing.T) {
	ctx := context.Background()
	store := settings.NewMemoryStore(nil)
	inner := dateformat.NewStandard(patterns.NewRegistry())
	fs := &fixedSunrise{}
	dec := dateformat.NewDecorator(inner, dateformat.StoreConfiguration(store), nil,
		dateformat.WithSunrise(fs.sunrise))

	req := dateformat.Request{Timestamp: at(0), Kind: dateformat.Custom, Pattern: "@ a q"}
	if got, want := dec.Format(ctx, req), "Cryer am q"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	labels := settings.DefaultLabels()
	labels[0] = "Dawn"
	if err := settings.Save(ctx, store, settings.Configuration{Character: "q", Labels: labels}); err != nil {
		t.Fatal(err)
	}
	if got, want := dec.Format(ctx, req), "@ am Dawn"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Invalid stored values result in the defaults being used.
	if err := store.Set(ctx, map[string]any{settings.LabelsKey: 42}); err != nil {
		t.Fatal(err)
	}
	if got, want := dec.Format(ctx, req), "Cryer am q"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
