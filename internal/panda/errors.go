// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package panda

import "errors"

// Errors returned by [New], [LoadDotEnv] and the [Panda] accessors. Match
// them with errors.Is.
var (
	// ErrInvalidParameter indicates that a source variable name is not set
	// in the environment (or is set to an empty string).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDuplicateJSONFile indicates that two configuration files resolve to
	// the same configuration name.
	ErrDuplicateJSONFile = errors.New("duplicate json file")
	// ErrExistingEnvironmentVariable indicates that environment_variables.json
	// tried to set a variable that already exists.
	ErrExistingEnvironmentVariable = errors.New("existing environment variable")

	// ErrUnreadableSource indicates that a resolved source directory could not
	// be listed.
	ErrUnreadableSource = errors.New("unreadable source directory")
	// ErrMalformedJSONFile indicates that a configuration file could not be
	// read or does not hold JSON of the expected shape.
	ErrMalformedJSONFile = errors.New("malformed json file")
	// ErrConfigurationNotFound indicates a lookup of an unknown configuration
	// name or of a path that does not exist inside a configuration.
	ErrConfigurationNotFound = errors.New("configuration not found")
	// ErrDotEnvFile indicates that a dotenv file could not be read or parsed.
	ErrDotEnvFile = errors.New("invalid dotenv file")
)
