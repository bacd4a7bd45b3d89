// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package phpdate formats times using the single character directives of
// PHP's date() function, which is the pattern syntax used by Drupal date
// formats, for example "D, m/d/Y - H:i". A backslash escapes the following
// character and characters that are not directives are copied verbatim.
package phpdate

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Format formats t, in t's location, according to layout using the
// supplied names, or English if names is nil.
func Format(t time.Time, layout string, names *Names) string {
	if names == nil {
		names = English
	}
	var out strings.Builder
	for i := 0; i < len(layout); {
		r, n := utf8.DecodeRuneInString(layout[i:])
		i += n
		if r == '\\' {
			if i < len(layout) {
				r, n = utf8.DecodeRuneInString(layout[i:])
				i += n
				out.WriteRune(r)
			}
			continue
		}
		if !directive(&out, t, r, names) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func pad2(out *strings.Builder, v int) {
	if v < 10 && v >= 0 {
		out.WriteByte('0')
	}
	out.WriteString(strconv.Itoa(v))
}

func padN(out *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		out.WriteByte('0')
	}
	out.WriteString(s)
}

func hour12(h int) int {
	if h = h % 12; h == 0 {
		return 12
	}
	return h
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func offset(out *strings.Builder, t time.Time, colon, zulu bool) {
	_, secs := t.Zone()
	if zulu && secs == 0 {
		out.WriteByte('Z')
		return
	}
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	out.WriteByte(sign)
	pad2(out, secs/3600)
	if colon {
		out.WriteByte(':')
	}
	pad2(out, (secs%3600)/60)
}

func swatch(t time.Time) int {
	u := t.UTC()
	secs := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400
	return int(float64(secs) / 86.4)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func boolDigit(out *strings.Builder, v bool) {
	if v {
		out.WriteByte('1')
		return
	}
	out.WriteByte('0')
}

// directive writes the expansion of r to out and returns true if r is
// a supported directive.
func directive(out *strings.Builder, t time.Time, r rune, names *Names) bool {
	switch r {
	// Day.
	case 'd':
		pad2(out, t.Day())
	case 'D':
		out.WriteString(names.DaysShort[t.Weekday()])
	case 'j':
		out.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		out.WriteString(names.Days[t.Weekday()])
	case 'N':
		out.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'S':
		out.WriteString(ordinalSuffix(t.Day()))
	case 'w':
		out.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		out.WriteString(strconv.Itoa(t.YearDay() - 1))
	// Week.
	case 'W':
		_, wk := t.ISOWeek()
		pad2(out, wk)
	// Month.
	case 'F':
		out.WriteString(names.Months[t.Month()-1])
	case 'm':
		pad2(out, int(t.Month()))
	case 'M':
		out.WriteString(names.MonthsShort[t.Month()-1])
	case 'n':
		out.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		out.WriteString(strconv.Itoa(daysInMonth(t)))
	// Year.
	case 'L':
		boolDigit(out, isLeap(t.Year()))
	case 'o':
		yr, _ := t.ISOWeek()
		out.WriteString(strconv.Itoa(yr))
	case 'Y':
		if y := t.Year(); y < 0 {
			out.WriteByte('-')
			padN(out, -y, 4)
		} else {
			padN(out, y, 4)
		}
	case 'y':
		pad2(out, t.Year()%100)
	// Time.
	case 'a':
		if t.Hour() < 12 {
			out.WriteString(names.AM)
		} else {
			out.WriteString(names.PM)
		}
	case 'A':
		if t.Hour() < 12 {
			out.WriteString(strings.ToUpper(names.AM))
		} else {
			out.WriteString(strings.ToUpper(names.PM))
		}
	case 'B':
		padN(out, swatch(t), 3)
	case 'g':
		out.WriteString(strconv.Itoa(hour12(t.Hour())))
	case 'G':
		out.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		pad2(out, hour12(t.Hour()))
	case 'H':
		pad2(out, t.Hour())
	case 'i':
		pad2(out, t.Minute())
	case 's':
		pad2(out, t.Second())
	case 'u':
		padN(out, t.Nanosecond()/1000, 6)
	case 'v':
		padN(out, t.Nanosecond()/1000000, 3)
	// Timezone.
	case 'e':
		out.WriteString(t.Location().String())
	case 'I':
		boolDigit(out, t.IsDST())
	case 'O':
		offset(out, t, false, false)
	case 'P':
		offset(out, t, true, false)
	case 'p':
		offset(out, t, true, true)
	case 'T':
		abbr, _ := t.Zone()
		out.WriteString(abbr)
	case 'Z':
		_, secs := t.Zone()
		out.WriteString(strconv.Itoa(secs))
	// Full date/time.
	case 'c':
		out.WriteString(Format(t, `Y-m-d\TH:i:sP`, English))
	case 'r':
		out.WriteString(Format(t, "D, d M Y H:i:s O", English))
	case 'U':
		out.WriteString(strconv.FormatInt(t.Unix(), 10))
	default:
		return false
	}
	return true
}
