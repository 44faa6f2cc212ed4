// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

const (
	// EnvPrefix is prepended to every environment variable read by the
	// panda command (e.g. PANDA_SOURCES).
	EnvPrefix = "PANDA_"

	OutputJSON  = "json"
	OutputTable = "table"

	defaultLogLevel = "info"
)

// StructuredConfig is the configuration of the panda command itself. It is
// populated by merging defaults, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : environment variable name, after [EnvPrefix].
type StructuredConfig struct {
	// Sources lists the environment variable names whose values point at
	// configuration directories, in load order.
	// Env: PANDA_SOURCES (comma separated)
	Sources []string `env:"SOURCES"`

	// DotEnvFiles lists dotenv files applied before the sources are
	// resolved. Variables that are already set are never overwritten.
	// Env: PANDA_DOTENV (comma separated)
	DotEnvFiles []string `env:"DOTENV"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Output holds result rendering settings.
	Output Output `envPrefix:"OUTPUT_"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: PANDA_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds result rendering settings.
type Output struct {
	// Format is either "json" or "table".
	// Env: PANDA_OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log:    Log{Level: defaultLogLevel},
		Output: Output{Format: OutputJSON},
	}
}

// GetStructuredConfig loads, merges, and validates the panda command
// configuration from all sources in the following priority order (last
// source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables, read from environ
//  3. Command-line flags, as bound by [BindFlags] and already parsed
//
// environ is passed in rather than read from the process so the command can
// run against a preloaded or fake environment.
func GetStructuredConfig(environ map[string]string, flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(flags).
		build()
}
