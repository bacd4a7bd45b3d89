// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"cloudeng.io/dateformat"
	"cloudeng.io/dateformat/patterns"
	"cloudeng.io/dateformat/settings"
	"cloudeng.io/logging/ctxlog"
	"github.com/prometheus/client_golang/prometheus"
)

// Environment variables used for defaults.
const (
	settingsEnv = "DATEFORMAT_SETTINGS"
	formatsEnv  = "DATEFORMAT_FORMATS"
	timezoneEnv = "DATEFORMAT_TIMEZONE"
	localeEnv   = "DATEFORMAT_LOCALE"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Settings string `subcmd:"settings,,'YAML file containing the period settings, overrides $DATEFORMAT_SETTINGS'"`
	Formats  string `subcmd:"formats,,'YAML file containing additional named formats, overrides $DATEFORMAT_FORMATS'"`
	Timezone string `subcmd:"timezone,,'default time zone, overrides $DATEFORMAT_TIMEZONE'"`
	Locale   string `subcmd:"locale,,'default locale, overrides $DATEFORMAT_LOCALE'"`
}

type formatFlags struct {
	CommonFlags
	Type   string `subcmd:"type,medium,'name of the format to use or custom'"`
	Format string `subcmd:"format,,'the pattern to use for the custom format type'"`
}

type setFlags struct {
	CommonFlags
	Character string `subcmd:"character,,'the replacement character, unchanged if not specified'"`
}

type serveFlags struct {
	CommonFlags
	Address string `subcmd:"address,:8080,'address to run the http server on'"`
}

func valueOrEnv(value, key, def string) string {
	if len(value) > 0 {
		return value
	}
	if v := os.Getenv(key); len(v) > 0 {
		return v
	}
	return def
}

// settingsFile returns the name of the settings file, which defaults to
// periodfmt/settings.yaml in the user's configuration directory.
func (cf *CommonFlags) settingsFile() (string, error) {
	if f := valueOrEnv(cf.Settings, settingsEnv, ""); len(f) > 0 {
		return f, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "periodfmt", "settings.yaml"), nil
}

// env represents the configured components shared by all commands.
type env struct {
	registry  *patterns.Registry
	store     *settings.FileStore
	formatter *dateformat.Decorator
}

// setup creates the logger and the formatter according to the flags and
// environment. The returned function must be called to release the
// logger's resources.
func (cf *CommonFlags) setup(ctx context.Context, reg prometheus.Registerer) (context.Context, *env, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cleanup := func() { logger.Close() }

	registry := patterns.NewRegistry()
	if formats := valueOrEnv(cf.Formats, formatsEnv, ""); len(formats) > 0 {
		if err := registry.LoadFile(ctx, formats); err != nil {
			cleanup()
			return ctx, nil, nil, err
		}
	}
	filename, err := cf.settingsFile()
	if err != nil {
		cleanup()
		return ctx, nil, nil, err
	}
	store := settings.NewFileStore(filename)

	opts := []dateformat.Option{
		dateformat.WithDefaultTimezone(valueOrEnv(cf.Timezone, timezoneEnv, dateformat.LocalTimezone())),
	}
	locale := valueOrEnv(cf.Locale, localeEnv, dateformat.DefaultLocale)
	opts = append(opts, dateformat.WithCurrentLocale(func(context.Context) string { return locale }))
	if reg != nil {
		opts = append(opts, dateformat.WithMetrics(dateformat.NewMetrics(reg)))
	}
	std := dateformat.NewStandard(registry, opts...)
	formatter := dateformat.NewDecorator(std, dateformat.StoreConfiguration(store), registry.Lookup, opts...)
	return ctx, &env{registry: registry, store: store, formatter: formatter}, cleanup, nil
}
