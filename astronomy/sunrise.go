// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides sunrise and sunset times for a given date
// and location.
package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// CalendarDateFromTime returns the CalendarDate for t in t's location.
func CalendarDateFromTime(t time.Time) datetime.CalendarDate {
	y, m, d := t.Date()
	return datetime.NewCalendarDate(y, datetime.Month(m), d)
}

// SunRise returns the time of sunrise and sunset for the specified
// date, latitude and longitude. The returned time is in UTC. Both
// times are zero if the sun does not rise or set on that date
// at that location, ie. within the polar day or night.
func SunRise(date datetime.CalendarDate, lat, long float64) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		lat, long,
		date.Year(), time.Month(date.Month()), date.Day())
	return
}

// Sunrise returns the time of sunrise on the calendar day that contains
// when, as determined by when's location. The returned time is in when's
// location. It returns false if there is no sunrise on that day.
func Sunrise(when time.Time, lat, long float64) (time.Time, bool) {
	rise, _ := SunRise(CalendarDateFromTime(when), lat, long)
	if rise.IsZero() {
		return time.Time{}, false
	}
	return rise.In(when.Location()), true
}

// DaylightHours returns the duration between sunrise and sunset, it
// returns false if either is undefined.
func DaylightHours(date datetime.CalendarDate, lat, long float64) (time.Duration, bool) {
	rise, set := SunRise(date, lat, long)
	if rise.IsZero() || set.IsZero() {
		return 0, false
	}
	return set.Sub(rise), true
}

// SunriseTime implements datetime.DynamicTimeOfDay for sunrise. It
// evaluates to midnight when there is no sunrise.
type SunriseTime struct{}

func (SunriseTime) Name() string {
	return "Sunrise"
}

func (SunriseTime) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	rise, _ := SunRise(cd, place.Latitude, place.Longitude)
	if rise.IsZero() {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	return datetime.TimeOfDayFromTime(rise.In(place.TZ))
}
