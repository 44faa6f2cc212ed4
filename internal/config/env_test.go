// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"PANDA_SOURCES":       "PRIMARY_CONFIGURATION_FILES,SECONDARY_CONFIGURATION_FILES",
		"PANDA_DOTENV":        ".env,../.env",
		"PANDA_LOG_LEVEL":     "debug",
		"PANDA_OUTPUT_FORMAT": "table",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, []string{"PRIMARY_CONFIGURATION_FILES", "SECONDARY_CONFIGURATION_FILES"}, cfg.Sources)
	assert.Equal(t, []string{".env", "../.env"}, cfg.DotEnvFiles)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"PANDA_SOURCES": "PRIMARY_CONFIGURATION_FILES",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, []string{"PRIMARY_CONFIGURATION_FILES"}, cfg.Sources)
	assert.Empty(t, cfg.DotEnvFiles)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Equal(t, Output{}, cfg.Output)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_IgnoresUnprefixedVariables(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"SOURCES":          "NOT_MINE",
		"LOG_LEVEL":        "debug",
		"MY_FAVORITE_FOOD": "Dumplings",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.Sources)
	assert.Empty(t, cfg.Log.Level)
}

func TestParseEnv_NonPointerTarget(t *testing.T) {
	err := parseEnv(StructuredConfig{}, map[string]string{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
