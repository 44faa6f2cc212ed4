package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the panda command flags on fs and returns the config
// they write into once fs is parsed.
//
// Flags:
//
//	-s/--source     environment variable naming a configuration directory (repeatable)
//	--dotenv        dotenv file applied before loading (repeatable)
//	--log-level     log level (debug, info, warn, error)
//	-o/--output     output format (json, table)
//
// Flag defaults are empty so that unset flags never override the
// environment layer during the merge.
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringSliceVarP(&cfg.Sources, "source", "s", nil, "Environment variable naming a configuration directory (repeatable)")
	fs.StringSliceVar(&cfg.DotEnvFiles, "dotenv", nil, "Dotenv file applied before loading (repeatable)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level: debug, info, warn, error (default \"info\")")
	fs.StringVarP(&cfg.Output.Format, "output", "o", "", "Output format: json or table (default \"json\")")

	return cfg
}
