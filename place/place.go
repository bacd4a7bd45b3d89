// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package place provides the geographic location associated with an IANA
// time zone, as recorded in the tz database's zone.tab. The coordinates
// are those of the zone's principal city and are therefore only an
// approximation of any particular location within that zone.
package place

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

var (
	//go:embed zone.tab
	zoneTab []byte
	//go:embed backward
	backwardLinks []byte
)

// ErrUnknownZone is returned for zones that have no entry in the zone table.
var ErrUnknownZone = errors.New("unknown time zone")

// Place represents a time zone and its associated location.
type Place struct {
	datetime.Place
	CountryCode string
	Comments    string
}

func (p Place) String() string {
	return fmt.Sprintf("%v (%v): %.4f,%.4f", p.TZ, p.CountryCode, p.Latitude, p.Longitude)
}

// Entry represents a single line of a zone.tab file.
type Entry struct {
	CountryCode string
	Latitude    float64
	Longitude   float64
	Zone        string
	Comments    string
}

// Table maps zone names to their zone.tab entries. Links maps
// backward compatible zone names, eg. Asia/Calcutta, to their
// current names.
type Table struct {
	Zones map[string]Entry
	Links Links
}

// Links maps a link name to its target zone.
type Links map[string]string

// ParseZoneTab parses the contents of a zone.tab (or zone1970.tab)
// formatted file. Comment lines and blank lines are ignored.
func ParseZoneTab(rd io.Reader) (map[string]Entry, error) {
	tbl := map[string]Entry{}
	sc := bufio.NewScanner(rd)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: too few fields: %q", lineno, line)
		}
		lat, long, err := ParseISO6709(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		e := Entry{
			CountryCode: fields[0],
			Latitude:    lat,
			Longitude:   long,
			Zone:        fields[2],
		}
		if len(fields) > 3 {
			e.Comments = fields[3]
		}
		tbl[e.Zone] = e
	}
	return tbl, sc.Err()
}

// ParseLinks parses the Link lines of a tz database source file such as
// backward. All other lines are ignored.
func ParseLinks(rd io.Reader) (Links, error) {
	links := Links{}
	sc := bufio.NewScanner(rd)
	lineno := 0
	for sc.Scan() {
		lineno++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "Link" {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: too few fields: %q", lineno, sc.Text())
		}
		links[fields[2]] = fields[1]
	}
	return links, sc.Err()
}

// Resolve follows links from name until it reaches a name that is
// not itself a link.
func (l Links) Resolve(name string) string {
	for range 8 {
		target, ok := l[name]
		if !ok {
			break
		}
		name = target
	}
	return name
}

// ParseISO6709 parses coordinates of the form ±DDMM±DDDMM or
// ±DDMMSS±DDDMMSS as used in zone.tab.
func ParseISO6709(val string) (lat, long float64, err error) {
	if len(val) < 2 || (val[0] != '+' && val[0] != '-') {
		return 0, 0, fmt.Errorf("invalid coordinates: %q", val)
	}
	idx := strings.IndexAny(val[1:], "+-") + 1
	if idx == 0 {
		return 0, 0, fmt.Errorf("invalid coordinates: %q", val)
	}
	if lat, err = parseDMS(val[:idx], 2); err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %q: %w", val, err)
	}
	if long, err = parseDMS(val[idx:], 3); err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %q: %w", val, err)
	}
	return
}

func parseDMS(val string, degDigits int) (float64, error) {
	sign := 1.0
	if val[0] == '-' {
		sign = -1.0
	}
	digits := val[1:]
	if l := len(digits); l != degDigits+2 && l != degDigits+4 {
		return 0, fmt.Errorf("unexpected number of digits: %v", l)
	}
	deg, err := strconv.Atoi(digits[:degDigits])
	if err != nil {
		return 0, err
	}
	mins, err := strconv.Atoi(digits[degDigits : degDigits+2])
	if err != nil {
		return 0, err
	}
	secs := 0
	if len(digits) == degDigits+4 {
		if secs, err = strconv.Atoi(digits[degDigits+2:]); err != nil {
			return 0, err
		}
	}
	return sign * (float64(deg) + float64(mins)/60 + float64(secs)/3600), nil
}

var (
	embeddedOnce  sync.Once
	embeddedTable Table
	embeddedErr   error
)

// Embedded returns the table compiled into this package.
func Embedded() (Table, error) {
	embeddedOnce.Do(func() {
		zones, err := ParseZoneTab(bytes.NewReader(zoneTab))
		if err != nil {
			embeddedErr = err
			return
		}
		links, err := ParseLinks(bytes.NewReader(backwardLinks))
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedTable = Table{Zones: zones, Links: links}
	})
	return embeddedTable, embeddedErr
}

// Lookup returns the Place for the named zone. Link names are resolved
// to their target zone's location, but the returned TZ is
// always that of name. The zones UTC, Etc/* and the empty string (UTC)
// are located at 0,0 with a country code of ??.
func (t Table) Lookup(name string) (Place, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Place{}, fmt.Errorf("%q: %w: %w", name, ErrUnknownZone, err)
	}
	zone := loc.String()
	if _, ok := t.Zones[zone]; !ok {
		zone = t.Links.Resolve(zone)
	}
	if isUTC(zone) {
		return Place{Place: datetime.Place{TZ: loc}, CountryCode: "??"}, nil
	}
	e, ok := t.Zones[zone]
	if !ok {
		return Place{}, fmt.Errorf("%q: %w", name, ErrUnknownZone)
	}
	return Place{
		Place: datetime.Place{
			TZ:        loc,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
		},
		CountryCode: e.CountryCode,
		Comments:    e.Comments,
	}, nil
}

func isUTC(name string) bool {
	switch name {
	case "UTC", "GMT", "Zulu", "Universal":
		return true
	}
	return strings.HasPrefix(name, "Etc/")
}

// ForZone is like Table.Lookup using the embedded table.
func ForZone(name string) (Place, error) {
	tbl, err := Embedded()
	if err != nil {
		return Place{}, err
	}
	return tbl.Lookup(name)
}
