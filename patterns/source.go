// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package patterns

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
)

// FileSource is a Source that reads a YAML list of formats from a file
// every time it is consulted.
type FileSource struct {
	Filename string
}

// Pattern implements Source.
func (fs FileSource) Pattern(ctx context.Context, id string) (string, error) {
	var formats []Format
	if err := cmdyaml.ParseConfigFileStrict(ctx, fs.Filename, &formats); err != nil {
		return "", err
	}
	for _, f := range formats {
		if f.ID == id {
			return f.Pattern, nil
		}
	}
	return "", fmt.Errorf("%q: %w", id, ErrNotFound)
}

// MapSource is a Source backed by a map.
type MapSource map[string]string

// Pattern implements Source.
func (ms MapSource) Pattern(_ context.Context, id string) (string, error) {
	if p, ok := ms[id]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%q: %w", id, ErrNotFound)
}
