// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Store represents a simple key/value configuration store.
type Store interface {
	// Get returns the value for key and true, or false if there is no
	// such key.
	Get(ctx context.Context, key string) (any, bool, error)
	// Set atomically updates the values for the keys in values.
	Set(ctx context.Context, values map[string]any) error
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]any
}

// NewMemoryStore returns a new MemoryStore initialized with a copy of
// values.
func NewMemoryStore(values map[string]any) *MemoryStore {
	return &MemoryStore{values: maps.Clone(values)}
}

// Get implements Store.
func (ms *MemoryStore) Get(_ context.Context, key string) (any, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.values[key]
	return v, ok, nil
}

// Set implements Store.
func (ms *MemoryStore) Set(_ context.Context, values map[string]any) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.values == nil {
		ms.values = map[string]any{}
	}
	maps.Copy(ms.values, values)
	return nil
}

// FileStore is a Store backed by a YAML file. The file is read on every
// call to Get so that changes made by other processes are visible. A
// missing file is treated as an empty store.
type FileStore struct {
	mu       sync.Mutex
	filename string
}

// NewFileStore returns a FileStore for filename.
func NewFileStore(filename string) *FileStore {
	return &FileStore{filename: filename}
}

// Filename returns the name of the file used by the store.
func (s *FileStore) Filename() string {
	return s.filename
}

func (s *FileStore) read(ctx context.Context) (map[string]any, error) {
	values := map[string]any{}
	if err := cmdyaml.ParseConfigFile(ctx, s.filename, &values); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return values, nil
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read(ctx)
	if err != nil {
		return nil, false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set implements Store. The file is rewritten by first writing to a
// temporary file in the same directory and then renaming it.
func (s *FileStore) Set(ctx context.Context, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read(ctx)
	if err != nil {
		return err
	}
	maps.Copy(current, values)
	buf, err := yaml.Marshal(current)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.filename), filepath.Base(s.filename)+".*")
	if err != nil {
		return err
	}
	errs := &errors.M{}
	_, err = tmp.Write(buf)
	errs.Append(err)
	errs.Append(tmp.Close())
	if err := errs.Err(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), s.perms()); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.filename); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	ctxlog.Logger(ctx).Info("settings updated", "file", s.filename, "keys", len(values))
	return nil
}

func (s *FileStore) perms() os.FileMode {
	if fi, err := os.Stat(s.filename); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}
