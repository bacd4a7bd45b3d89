// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"cloudeng.io/dateformat"
	"cloudeng.io/dateformat/server"
	"cloudeng.io/dateformat/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/yaml.v3"
)

// stdout is where command output is written.
var stdout io.Writer = os.Stdout

func parseTimestamp(args []string) (int64, error) {
	if len(args) == 0 {
		return time.Now().Unix(), nil
	}
	ts, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", args[0], err)
	}
	return ts, nil
}

func formatCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*formatFlags)
	ts, err := parseTimestamp(args)
	if err != nil {
		return err
	}
	ctx, e, cleanup, err := fv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	fmt.Fprintln(stdout, e.formatter.Format(ctx, dateformat.Request{
		Timestamp: ts,
		Kind:      fv.Type,
		Pattern:   fv.Format,
	}))
	return nil
}

func samplesCmd(ctx context.Context, values interface{}, args []string) error {
	cv := values.(*CommonFlags)
	ts, err := parseTimestamp(args)
	if err != nil {
		return err
	}
	ctx, e, cleanup, err := cv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	samples := e.formatter.SampleDateFormats(ctx, "", ts, "")
	directives := make([]string, 0, len(samples))
	for d := range samples {
		directives = append(directives, d)
	}
	slices.Sort(directives)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, d := range directives {
		fmt.Fprintf(tw, "%s\t%s\n", d, samples[d])
	}
	return tw.Flush()
}

func formatsCmd(ctx context.Context, values interface{}, _ []string) error {
	cv := values.(*CommonFlags)
	ctx, e, cleanup, err := cv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, f := range e.registry.Formats() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Pattern, e.formatter.Format(ctx, dateformat.Request{
			Timestamp: time.Now().Unix(),
			Kind:      f.ID,
		}))
	}
	return tw.Flush()
}

func writeSettings(out io.Writer, cfg settings.Configuration) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}

func showSettings(ctx context.Context, e *env) error {
	cfg, err := settings.Load(ctx, e.store)
	if err != nil {
		return err
	}
	return writeSettings(stdout, cfg)
}

func settingsShowCmd(ctx context.Context, values interface{}, _ []string) error {
	cv := values.(*CommonFlags)
	ctx, e, cleanup, err := cv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	return showSettings(ctx, e)
}

func prepareSettingsFile(e *env) error {
	return os.MkdirAll(filepath.Dir(e.store.Filename()), 0700)
}

func settingsResetCmd(ctx context.Context, values interface{}, _ []string) error {
	cv := values.(*CommonFlags)
	ctx, e, cleanup, err := cv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	if err := prepareSettingsFile(e); err != nil {
		return err
	}
	if err := settings.Reset(ctx, e.store); err != nil {
		return err
	}
	return showSettings(ctx, e)
}

func settingsSetCmd(ctx context.Context, values interface{}, args []string) error {
	sv := values.(*setFlags)
	ctx, e, cleanup, err := sv.setup(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	cfg, err := updateSettings(ctx, e.store, sv.Character, args)
	if err != nil {
		return err
	}
	if err := prepareSettingsFile(e); err != nil {
		return err
	}
	if err := settings.Save(ctx, e.store, cfg); err != nil {
		return err
	}
	return writeSettings(stdout, cfg.Normalize())
}

// updateSettings returns the current settings with the character and
// labels replaced if specified.
func updateSettings(ctx context.Context, store settings.Store, character string, labels []string) (settings.Configuration, error) {
	cfg, err := settings.Load(ctx, store)
	if err != nil {
		return cfg, err
	}
	if len(character) > 0 {
		cfg.Character = character
	}
	if len(labels) > 0 {
		cfg.Labels = labels
	}
	return cfg, nil
}

func serveCmd(ctx context.Context, values interface{}, _ []string) error {
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	sv := values.(*serveFlags)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ctx, e, cleanup, err := sv.setup(ctx, reg)
	if err != nil {
		return err
	}
	defer cleanup()
	if err := prepareSettingsFile(e); err != nil {
		return err
	}
	srv := server.New(e.formatter, e.store, e.registry, server.WithGatherer(reg))
	return srv.Serve(ctx, sv.Address)
}
