// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive a load.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinels in errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Sources) == 0 {
		return ErrNoSources
	}

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		return err
	}

	switch cfg.Output.Format {
	case OutputJSON, OutputTable:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, cfg.Output.Format)
	}

	return nil
}

// ZerologLevel parses Level.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return level, nil
}
