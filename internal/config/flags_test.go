package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBindFlags_Unset verifies that unparsed flags leave a zero config, so
// the flag layer never overrides the environment by accident.
func TestBindFlags_Unset(t *testing.T) {
	fs := pflag.NewFlagSet("panda", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBindFlags_AllFlags verifies every flag is written into the config.
func TestBindFlags_AllFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "long names",
			args: []string{"--source", "PRIMARY", "--dotenv", ".env", "--log-level", "debug", "--output", "table"},
			want: &StructuredConfig{
				Sources:     []string{"PRIMARY"},
				DotEnvFiles: []string{".env"},
				Log:         Log{Level: "debug"},
				Output:      Output{Format: "table"},
			},
		},
		{
			name: "short names",
			args: []string{"-s", "PRIMARY", "-s", "SECONDARY", "-o", "json"},
			want: &StructuredConfig{
				Sources: []string{"PRIMARY", "SECONDARY"},
				Output:  Output{Format: "json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("panda", pflag.ContinueOnError)
			cfg := BindFlags(fs)

			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// TestBindFlags_UnknownFlag verifies that unknown flags are rejected.
func TestBindFlags_UnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("panda", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--nope"}))
}
