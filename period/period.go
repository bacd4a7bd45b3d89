// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package period determines which fixed length period of the day, measured
// from sunrise, a given time falls within and the label associated with
// that period. Periods are 48 minutes long, so that a day comprises 30
// periods (muhurtas) with the first beginning at sunrise.
package period

import (
	"fmt"
	"time"

	"cloudeng.io/dateformat/astronomy"
	"cloudeng.io/errors"
)

// Length is the duration of a single period.
const Length = 48 * time.Minute

// ErrSunriseUndefined is returned when there is no sunrise at the
// requested location on the requested day.
var ErrSunriseUndefined = errors.New("sunrise is undefined")

// ResolutionError is returned when a period cannot be determined.
type ResolutionError struct {
	When      time.Time
	Latitude  float64
	Longitude float64
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("period for %v at %.4f,%.4f: %v", e.When.Format(time.RFC3339), e.Latitude, e.Longitude, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// SunriseFunc returns the time of sunrise on the calendar day that contains
// when at the specified location, or false if there is no sunrise that day.
type SunriseFunc func(when time.Time, lat, long float64) (time.Time, bool)

// Index returns the 0-based index of the period that contains when, given
// the time of sunrise. Times before sunrise have negative indices.
func Index(when, sunrise time.Time) int {
	elapsed := when.Unix() - sunrise.Unix()
	secs := int64(Length / time.Second)
	idx := elapsed / secs
	if elapsed%secs != 0 && elapsed < 0 {
		idx--
	}
	return int(idx)
}

// Label returns labels[idx], or the empty string if idx is out of range.
func Label(labels []string, idx int) string {
	if idx < 0 || idx >= len(labels) {
		return ""
	}
	return labels[idx]
}

// Resolver determines the period label for a given time and location.
// The zero value uses astronomy.Sunrise.
type Resolver struct {
	Sunrise SunriseFunc
}

// Resolve returns the label for the period that contains when at the
// specified location. An out of range period yields the empty string
// rather than an error; a *ResolutionError is returned only if sunrise
// cannot be determined.
func (r Resolver) Resolve(when time.Time, lat, long float64, labels []string) (string, error) {
	idx, err := r.Index(when, lat, long)
	if err != nil {
		return "", err
	}
	return Label(labels, idx), nil
}

// Index returns the index of the period that contains when.
func (r Resolver) Index(when time.Time, lat, long float64) (int, error) {
	sunrise := r.Sunrise
	if sunrise == nil {
		sunrise = astronomy.Sunrise
	}
	rise, ok := sunrise(when, lat, long)
	if !ok {
		return 0, &ResolutionError{When: when, Latitude: lat, Longitude: long, Err: ErrSunriseUndefined}
	}
	return Index(when, rise), nil
}
