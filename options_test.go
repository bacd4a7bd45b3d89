// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// Expected results assume a UTC local time zone.
	time.Local = time.UTC
	os.Exit(m.Run())
}

func TestTimezoneName(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		loc  *time.Location
		want string
	}{
		{kolkata, "Asia/Kolkata"},
		{time.UTC, "UTC"},
		{time.FixedZone("Local", 3600), DefaultTimezone},
		{time.FixedZone("", 0), DefaultTimezone},
		{time.FixedZone("/etc/localtime-copy", 0), DefaultTimezone},
	} {
		if got, want := timezoneName(tc.loc), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got, want := newOptions(nil).timezone, LocalTimezone(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newOptions([]Option{WithDefaultTimezone("Europe/Paris")}).timezone, "Europe/Paris"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
