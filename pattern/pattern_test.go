// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pattern_test

import (
	"slices"
	"strings"
	"testing"

	"cloudeng.io/dateformat/pattern"
	"cloudeng.io/text/testing/testtext"
)

func lit(s string) pattern.Fragment {
	return pattern.Fragment{Kind: pattern.Literal, Text: s}
}

func ph(s string) pattern.Fragment {
	return pattern.Fragment{Kind: pattern.Placeholder, Text: s}
}

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name    string
		delim   string
		pattern string
		want    []pattern.Fragment
	}{
		{"empty", "@", "", nil},
		{"empty delim", "", "Y-m-d", []pattern.Fragment{lit("Y-m-d")}},
		{"empty both", "", "", nil},
		{"no delim", "@", "Y-m-d", []pattern.Fragment{lit("Y-m-d")}},
		{"leading", "@", "@, Y-m-d", []pattern.Fragment{ph("@"), lit(", Y-m-d")}},
		{"trailing", "@", "Y-m-d @", []pattern.Fragment{lit("Y-m-d "), ph("@")}},
		{"adjacent", "@", "a@@b", []pattern.Fragment{lit("a"), ph("@"), ph("@"), lit("b")}},
		{"only delims", "@", "@@@", []pattern.Fragment{ph("@"), ph("@"), ph("@")}},
		{"explode", ",", "one,two,three", []pattern.Fragment{
			lit("one"), ph(","), lit("two"), ph(","), lit("three")}},
		{"multibyte", "⌘", "D ⌘ j", []pattern.Fragment{lit("D "), ph("⌘"), lit(" j")}},
		{"multichar", "%%", "a%%%b", []pattern.Fragment{lit("a"), ph("%%"), lit("%b")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := pattern.Tokenize(tc.delim, tc.pattern)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Tokenize(%q, %q): got %v, want %v", tc.delim, tc.pattern, got, tc.want)
			}
			if got, want := pattern.Join(got), tc.pattern; got != want {
				t.Errorf("Join: got %q, want %q", got, want)
			}
		})
	}
}

func TestNoEmptyLiterals(t *testing.T) {
	for _, p := range []string{"@@", "a@@@b@", "@x@", "@"} {
		for _, f := range pattern.Tokenize("@", p) {
			if len(f.Text) == 0 {
				t.Errorf("%q: zero length fragment: %v", p, f)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := testtext.NewRandom()
	for i := range 200 {
		delim := string("@,-"[i%3])
		var sb strings.Builder
		for j := range i % 7 {
			sb.WriteString(rnd.AllRuneLens(j + 1))
			if j%2 == 0 {
				sb.WriteString(delim)
			}
		}
		p := sb.String()
		fragments := pattern.Tokenize(delim, p)
		if got, want := pattern.Join(fragments), p; got != want {
			t.Errorf("round trip: got %q, want %q", got, want)
		}
		if got, want := pattern.Placeholders(fragments), strings.Count(p, delim); got != want {
			t.Errorf("%q: got %v placeholders, want %v", p, got, want)
		}
		if !strings.Contains(p, delim) && len(p) > 0 {
			if got, want := fragments, []pattern.Fragment{lit(p)}; !slices.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestFragmentsEarlyExit(t *testing.T) {
	n := 0
	for range pattern.Fragments("-", "a-b-c-d") {
		n++
		if n == 2 {
			break
		}
	}
	if got, want := n, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
