// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pattern splits date format patterns into literal runs and
// occurrences of a placeholder string. The placeholder is not escapable:
// every occurrence is reported as a placeholder regardless of where it
// appears in the pattern.
package pattern

import (
	"iter"
	"strings"
)

// Kind identifies the type of a Fragment.
type Kind int

const (
	Literal Kind = iota
	Placeholder
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	}
	return "unknown"
}

// Fragment is either a run of literal pattern text or a single occurrence
// of the placeholder. For a Placeholder, Text is the placeholder itself.
type Fragment struct {
	Kind Kind
	Text string
}

// IsPlaceholder returns true if the fragment is a placeholder.
func (f Fragment) IsPlaceholder() bool {
	return f.Kind == Placeholder
}

func (f Fragment) String() string {
	return f.Kind.String() + "(" + f.Text + ")"
}

// Fragments returns an iterator over the fragments of pattern as delimited
// by every non-overlapping occurrence of delim. Empty literal runs, such
// as those between adjacent placeholders, are never yielded. An empty
// pattern yields nothing and an empty delim yields the entire pattern as
// a single literal.
func Fragments(delim, pattern string) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		if len(pattern) == 0 {
			return
		}
		if len(delim) == 0 {
			yield(Fragment{Kind: Literal, Text: pattern})
			return
		}
		remaining := pattern
		for {
			idx := strings.Index(remaining, delim)
			if idx == -1 {
				if len(remaining) > 0 {
					yield(Fragment{Kind: Literal, Text: remaining})
				}
				return
			}
			if idx > 0 {
				if !yield(Fragment{Kind: Literal, Text: remaining[:idx]}) {
					return
				}
			}
			if !yield(Fragment{Kind: Placeholder, Text: delim}) {
				return
			}
			remaining = remaining[idx+len(delim):]
		}
	}
}

// Tokenize returns the fragments of pattern as per Fragments.
func Tokenize(delim, pattern string) []Fragment {
	var fragments []Fragment
	for f := range Fragments(delim, pattern) {
		fragments = append(fragments, f)
	}
	return fragments
}

// Join concatenates the text of the supplied fragments, it is the inverse
// of Tokenize.
func Join(fragments []Fragment) string {
	var out strings.Builder
	for _, f := range fragments {
		out.WriteString(f.Text)
	}
	return out.String()
}

// Placeholders returns the number of placeholder fragments.
func Placeholders(fragments []Fragment) int {
	n := 0
	for _, f := range fragments {
		if f.IsPlaceholder() {
			n++
		}
	}
	return n
}
