// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/dateformat/astronomy"
	"cloudeng.io/datetime"
)

func within(got, want time.Time, d time.Duration) bool {
	diff := got.Sub(want)
	return diff > -d && diff < d
}

func TestSunrise(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	lat, long := 37.3229978, -122.0321823
	cd := datetime.NewCalendarDate(2024, 1, 1)
	rise, set := astronomy.SunRise(cd, lat, long)

	if got, want := rise, time.Date(2024, 1, 1, 7, 22, 13, 0, loc); !within(got, want, 2*time.Minute) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := set, time.Date(2024, 1, 1, 17, 0, 33, 0, loc); !within(got, want, 2*time.Minute) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Late in the local day, still the same calendar date.
	when := time.Date(2024, 1, 1, 22, 30, 0, 0, loc)
	sr, ok := astronomy.Sunrise(when, lat, long)
	if !ok {
		t.Fatalf("no sunrise")
	}
	if got, want := sr, rise; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sr.Location(), loc; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astronomy.CalendarDateFromTime(when), cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPolar(t *testing.T) {
	// Longyearbyen, Svalbard is in the polar night in December and
	// the polar day in June.
	lat, long := 78.2232, 15.6267
	for _, when := range []time.Time{
		time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
	} {
		if _, ok := astronomy.Sunrise(when, lat, long); ok {
			t.Errorf("%v: expected no sunrise", when)
		}
		if _, ok := astronomy.DaylightHours(astronomy.CalendarDateFromTime(when), lat, long); ok {
			t.Errorf("%v: expected no daylight hours", when)
		}
	}
}

func TestDaylightHours(t *testing.T) {
	lat, long := 33.4484, -112.0740
	summer, ok := astronomy.DaylightHours(datetime.NewCalendarDate(2025, 6, 21), lat, long)
	if !ok {
		t.Fatal("no daylight")
	}
	winter, ok := astronomy.DaylightHours(datetime.NewCalendarDate(2025, 12, 21), lat, long)
	if !ok {
		t.Fatal("no daylight")
	}
	if summer <= winter {
		t.Errorf("summer %v should be longer than winter %v", summer, winter)
	}
}

func TestSunriseTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	var dyn datetime.DynamicTimeOfDay = astronomy.SunriseTime{}
	if got, want := dyn.Name(), "Sunrise"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	place := datetime.Place{
		TZ:        loc,
		Latitude:  37.3229978,
		Longitude: -122.0321823}
	tod := dyn.Evaluate(datetime.NewCalendarDate(2024, 1, 1), place)
	if got, want := int(tod.Hour()), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if m := int(tod.Minute()); m < 20 || m > 24 {
		t.Errorf("unexpected minute: %v", m)
	}

	polar := datetime.Place{TZ: time.UTC, Latitude: 78.2232, Longitude: 15.6267}
	tod = dyn.Evaluate(datetime.NewCalendarDate(2024, 12, 21), polar)
	if tod.Hour() != 0 || tod.Minute() != 0 {
		t.Errorf("expected midnight: %v", tod)
	}
}
