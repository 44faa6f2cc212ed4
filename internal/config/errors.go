package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when the merged
// configuration cannot drive a load.
var (
	// ErrNoSources indicates that no source variable was given through
	// PANDA_SOURCES or --source.
	ErrNoSources = errors.New("no configuration sources given")
	// ErrInvalidLogLevel indicates a log level zerolog does not recognise.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidOutputFormat indicates an output format other than json or
	// table.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
