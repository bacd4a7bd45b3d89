// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/dateformat/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := settings.Defaults()
	assert.Equal(t, "@", cfg.Character)
	require.Len(t, cfg.Labels, settings.NumLabels)
	assert.Equal(t, "Cryer", cfg.Labels[0])
	assert.Equal(t, "Ocean", cfg.Labels[29])
	require.NoError(t, cfg.Validate())

	// Defaults must not be shared.
	cfg.Labels[0] = "changed"
	assert.Equal(t, "Cryer", settings.DefaultLabels()[0])
}

func TestValidate(t *testing.T) {
	labels := settings.DefaultLabels()
	for _, tc := range []struct {
		name string
		cfg  settings.Configuration
		errs []string
	}{
		{"valid", settings.Configuration{Character: "q", Labels: labels}, nil},
		{"multibyte", settings.Configuration{Character: "⌘", Labels: labels}, nil},
		{"empty", settings.Configuration{Character: "", Labels: labels}, []string{"replacement_character"}},
		{"too long", settings.Configuration{Character: "ab", Labels: labels}, []string{"replacement_character"}},
		{"short labels", settings.Configuration{Character: "@", Labels: labels[:3]}, []string{"muhurtas", "not 3"}},
		{"both", settings.Configuration{Character: "xx", Labels: nil}, []string{"replacement_character", "muhurtas"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if len(tc.errs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, e := range tc.errs {
				assert.Contains(t, err.Error(), e)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := settings.Configuration{Character: "@", Labels: []string{"a", "", "c"}}.Normalize()
	require.Len(t, cfg.Labels, settings.NumLabels)
	assert.Equal(t, []string{"a", "", "c", ""}, cfg.Labels[:4])

	long := make([]string, 40)
	long[35] = "x"
	cfg = settings.Configuration{Character: "@", Labels: long}.Normalize()
	assert.Len(t, cfg.Labels, settings.NumLabels)
	assert.NotContains(t, cfg.Labels, "x")
}

func testStore(t *testing.T, store settings.Store) {
	ctx := context.Background()
	cfg, err := settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), cfg)

	labels := []string{"one", "", "three"}
	require.NoError(t, settings.Save(ctx, store, settings.Configuration{Character: "q", Labels: labels}))
	cfg, err = settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "q", cfg.Character)
	require.Len(t, cfg.Labels, settings.NumLabels)
	assert.Equal(t, labels, cfg.Labels[:3])
	assert.Equal(t, "", cfg.Labels[29])

	err = settings.Save(ctx, store, settings.Configuration{Character: "qq", Labels: labels})
	require.Error(t, err)
	cfg, err = settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "q", cfg.Character)

	require.NoError(t, settings.Reset(ctx, store))
	cfg, err = settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), cfg)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, settings.NewMemoryStore(nil))

	ctx := context.Background()
	store := settings.NewMemoryStore(map[string]any{
		settings.ReplacementCharacterKey: "",
		settings.LabelsKey:               []any{"x", "y"},
	})
	cfg, err := settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultCharacter, cfg.Character)
	assert.Equal(t, []string{"x", "y"}, cfg.Labels)

	store = settings.NewMemoryStore(map[string]any{settings.LabelsKey: 3})
	cfg, err = settings.Load(ctx, store)
	require.Error(t, err)
	assert.Equal(t, settings.Defaults(), cfg)
}

func TestFileStore(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "settings.yaml")
	testStore(t, settings.NewFileStore(filename))

	ctx := context.Background()
	require.NoError(t, os.Remove(filename))
	require.NoError(t, os.WriteFile(filename, []byte(`replacement_character: "%"
muhurtas:
  - first
  - ""
  - third
`), 0o600))
	store := settings.NewFileStore(filename)
	cfg, err := settings.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "%", cfg.Character)
	assert.Equal(t, []string{"first", "", "third"}, cfg.Labels)

	require.NoError(t, settings.Save(ctx, store, cfg))
	fi, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	buf, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(buf), "replacement_character: '%'") ||
		strings.Contains(string(buf), `replacement_character: "%"`), string(buf))

	require.NoError(t, os.WriteFile(filename, []byte("muhurtas: [\n"), 0o600))
	_, err = settings.Load(ctx, store)
	require.Error(t, err)
}
