// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dateformat provides a date formatter that extends PHP/Drupal
// style date format patterns with a placeholder character that is replaced
// by the name of the period of the day, measured in 48 minute intervals
// from sunrise, that the formatted time falls within.
//
// The Formatter interface enumerates all of the operations supported by
// a date formatter. Standard implements them directly using the phpdate
// and patterns packages and Decorator wraps any Formatter to add period
// label substitution to its Format method, forwarding all other methods
// unchanged:
//
//	reg := patterns.NewRegistry()
//	std := dateformat.NewStandard(reg)
//	store := settings.NewFileStore("settings.yaml")
//	f := dateformat.NewDecorator(std, dateformat.StoreConfiguration(store), reg.Lookup)
//	f.Format(ctx, dateformat.Request{Timestamp: ts, Kind: dateformat.Custom, Pattern: "@, Y-m-d"})
//
// The label is computed once per call and substituted for every occurrence
// of the placeholder. Formatting never fails: unknown format names yield
// an empty pattern and a period that cannot be determined, for example
// because the sun does not rise at the time zone's location on that day,
// yields an empty label.
package dateformat
