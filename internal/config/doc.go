// Package config provides configuration loading, merging, and validation
// for the panda command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables prefixed with PANDA_
//  3. Command-line flags
//
// The main entry points are [BindFlags], which registers the flags on a
// pflag.FlagSet, and [GetStructuredConfig], which merges the layers.
package config
