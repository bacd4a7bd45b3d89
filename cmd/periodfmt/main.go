// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command periodfmt formats dates, substituting the name of the period of
// the day (muhurta) for a placeholder character, and manages the period
// settings. It can also run the HTTP API provided by
// cloudeng.io/dateformat/server.
//
// Settings and defaults may be supplied via flags or via the environment,
// including a .env file in the current directory:
//
//	DATEFORMAT_SETTINGS  YAML file containing the period settings
//	DATEFORMAT_FORMATS   YAML file containing additional named formats
//	DATEFORMAT_TIMEZONE  default time zone
//	DATEFORMAT_LOCALE    default locale
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"github.com/joho/godotenv"
)

const cmdSpec = `name: periodfmt
summary: format dates using the period of the day in which they fall
commands:
  - name: format
    summary: format a unix timestamp, the current time is used if none is given
    arguments:
      - "[timestamp]"
  - name: samples
    summary: display every supported format directive for a unix timestamp
    arguments:
      - "[timestamp]"
  - name: formats
    summary: list the available named formats
  - name: settings
    summary: display and modify the period settings
    commands:
      - name: show
        summary: display the current settings
      - name: reset
        summary: restore the default settings
      - name: set
        summary: set the replacement character and the labels, in order, starting with the first period after sunrise
        arguments:
          - ...
  - name: serve
    summary: run the http api server
`

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("format").MustRunnerAndFlags(
		formatCmd, subcmd.MustRegisteredFlagSet(&formatFlags{}))
	cmdSet.Set("samples").MustRunnerAndFlags(
		samplesCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("formats").MustRunnerAndFlags(
		formatsCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("settings", "show").MustRunnerAndFlags(
		settingsShowCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("settings", "reset").MustRunnerAndFlags(
		settingsResetCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("settings", "set").MustRunnerAndFlags(
		settingsSetCmd, subcmd.MustRegisteredFlagSet(&setFlags{}))
	cmdSet.Set("serve").MustRunnerAndFlags(
		serveCmd, subcmd.MustRegisteredFlagSet(&serveFlags{}))
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}
