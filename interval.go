// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

type unit struct {
	singular, plural string
	seconds          int64
}

var intervalUnits = []unit{
	{"1 year", "years", 31536000},
	{"1 month", "months", 2592000},
	{"1 week", "weeks", 604800},
	{"1 day", "days", 86400},
	{"1 hour", "hours", 3600},
	{"1 min", "min", 60},
	{"1 sec", "sec", 1},
}

func plural(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return strconv.FormatInt(n, 10) + " " + plural
}

// formatInterval uses at most granularity units and never skips a unit,
// so that "1 year 1 sec" is displayed as "1 year".
func formatInterval(interval time.Duration, granularity int) string {
	secs := int64(interval / time.Second)
	if secs < 0 {
		secs = -secs
	}
	var parts []string
	for _, u := range intervalUnits {
		if granularity <= 0 {
			break
		}
		if secs >= u.seconds {
			parts = append(parts, plural(secs/u.seconds, u.singular, u.plural))
			secs %= u.seconds
			granularity--
		} else if len(parts) > 0 {
			break
		}
	}
	if len(parts) == 0 {
		return "0 sec"
	}
	return strings.Join(parts, " ")
}

const zeroDiff = "0 seconds"

var diffUnits = [...]struct{ singular, plural string }{
	{"1 year", "years"},
	{"1 month", "months"},
	{"1 day", "days"},
	{"1 hour", "hours"},
	{"1 minute", "minutes"},
	{"1 second", "seconds"},
}

const dayLevel = 2

// calendarDiff returns the calendar difference between a and b, a <= b,
// as years, months, days, hours, minutes and seconds.
func calendarDiff(a, b time.Time) [6]int {
	y := b.Year() - a.Year()
	mo := int(b.Month()) - int(a.Month())
	d := b.Day() - a.Day()
	h := b.Hour() - a.Hour()
	mi := b.Minute() - a.Minute()
	s := b.Second() - a.Second()
	if s < 0 {
		s += 60
		mi--
	}
	if mi < 0 {
		mi += 60
		h--
	}
	if h < 0 {
		h += 24
		d--
	}
	if d < 0 {
		// Borrow the number of days in a's month.
		d += int(datetime.DaysInMonth(a.Year(), datetime.Month(a.Month())))
		mo--
	}
	if mo < 0 {
		mo += 12
		y--
	}
	return [6]int{y, mo, d, h, mi, s}
}

// formatDays formats the day level as weeks and days. Each week
// consumes a unit of granularity, the remaining days are only
// reported if there is no higher level output or weeks were reported.
func formatDays(days int, haveOutput bool, granularity *int) []string {
	var parts []string
	weeks := days / 7
	if weeks > 0 {
		parts = append(parts, plural(int64(weeks), "1 week", "weeks"))
		days -= weeks * 7
		*granularity--
	}
	if (!haveOutput || weeks > 0) && days > 0 {
		parts = append(parts, plural(int64(days), "1 day", "days"))
	}
	return parts
}

func formatDiff(from, to time.Time, granularity int) string {
	if to.Before(from) {
		from, to = to, from
	}
	diff := calendarDiff(from, to)
	var parts []string
	for i, v := range diff {
		if v > 0 {
			if i == dayLevel {
				parts = append(parts, formatDays(v, len(parts) > 0, &granularity)...)
			} else {
				parts = append(parts, plural(int64(v), diffUnits[i].singular, diffUnits[i].plural))
			}
			granularity--
		} else if len(parts) > 0 {
			// A zero level after some output ends the difference so
			// that levels are never skipped.
			break
		}
		if granularity <= 0 {
			break
		}
	}
	if len(parts) == 0 {
		return zeroDiff
	}
	return strings.Join(parts, " ")
}
