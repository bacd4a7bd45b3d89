// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package settings provides the configuration used to substitute period
// labels into formatted dates: the placeholder character and the ordered
// list of labels, one per period of the day. The configuration is persisted
// in a key/value Store using the keys ReplacementCharacterKey and LabelsKey.
package settings

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultCharacter is used when no replacement character is configured.
	DefaultCharacter = "@"
	// NumLabels is the number of labels, one per 48 minute period.
	NumLabels = 30

	ReplacementCharacterKey = "replacement_character"
	LabelsKey               = "muhurtas"
)

var defaultLabels = [NumLabels]string{
	"Cryer",
	"Serpent",
	"Friend",
	"Father",
	"Bright",
	"Boar",
	"Heavenly Lights in the Universe",
	"Insight",
	"Goat/Charioteer-Face",
	"Many Offerings",
	"Possessed of Chariot",
	"Night Maker",
	"All-Enveloping Night Sky",
	"Possessed of Nobility",
	"Stake",
	"Lord who Lifted the Mount (Krishna)",
	"Unborn Foot",
	"Serpent at the Bottom",
	"Nourishment",
	"Horsement",
	"Restrainer",
	"Ignition",
	"Distributor",
	"Ornament",
	"Limitless",
	"Immortal",
	"All Pervading",
	"Resounding Light",
	"Universe",
	"Ocean",
}

// DefaultLabels returns a new copy of the default muhurta names.
func DefaultLabels() []string {
	l := defaultLabels
	return l[:]
}

// Configuration represents the placeholder character and the labels
// to be substituted for it. Position i in Labels always refers to the
// i'th period after sunrise, blank labels are preserved.
type Configuration struct {
	Character string   `yaml:"replacement_character" json:"replacement_character" validate:"required,len=1"`
	Labels    []string `yaml:"muhurtas" json:"muhurtas" validate:"len=30"`
}

// Defaults returns the default configuration.
func Defaults() Configuration {
	return Configuration{
		Character: DefaultCharacter,
		Labels:    DefaultLabels(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns an error describing every invalid field of the
// configuration.
func (c Configuration) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := &errors.M{}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Character":
			errs.Append(fmt.Errorf("%s: must be exactly one character", ReplacementCharacterKey))
		case "Labels":
			errs.Append(fmt.Errorf("%s: must contain exactly %d entries, not %d", LabelsKey, NumLabels, len(c.Labels)))
		default:
			errs.Append(fe)
		}
	}
	return errs.Err()
}

// Normalize returns a copy of the configuration with the labels truncated
// or padded with empty strings to NumLabels entries.
func (c Configuration) Normalize() Configuration {
	labels := make([]string, NumLabels)
	copy(labels, c.Labels)
	return Configuration{Character: c.Character, Labels: labels}
}

// Load reads the configuration from the store. Unset, or empty, values
// are replaced by their defaults. The default configuration is returned
// along with any error encountered reading from the store.
func Load(ctx context.Context, store Store) (Configuration, error) {
	cfg := Defaults()
	v, ok, err := store.Get(ctx, ReplacementCharacterKey)
	if err != nil {
		return Defaults(), err
	}
	if ok {
		s, err := asString(v)
		if err != nil {
			return Defaults(), fmt.Errorf("%s: %w", ReplacementCharacterKey, err)
		}
		if len(s) > 0 {
			cfg.Character = s
		}
	}
	v, ok, err = store.Get(ctx, LabelsKey)
	if err != nil {
		return Defaults(), err
	}
	if ok && v != nil {
		labels, err := asStrings(v)
		if err != nil {
			return Defaults(), fmt.Errorf("%s: %w", LabelsKey, err)
		}
		cfg.Labels = labels
	}
	return cfg, nil
}

// Save validates and writes the configuration to the store. The labels
// are normalized to NumLabels entries before being validated.
func Save(ctx context.Context, store Store, cfg Configuration) error {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return store.Set(ctx, map[string]any{
		ReplacementCharacterKey: cfg.Character,
		LabelsKey:               cfg.Labels,
	})
}

// Reset restores the default configuration.
func Reset(ctx context.Context, store Store) error {
	return Save(ctx, store, Defaults())
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("expected a string, got %T", v)
}

func asStrings(v any) ([]string, error) {
	switch l := v.(type) {
	case []string:
		return append([]string(nil), l...), nil
	case []any:
		out := make([]string, len(l))
		for i, e := range l {
			s, err := asString(e)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list of strings, got %T", v)
}
