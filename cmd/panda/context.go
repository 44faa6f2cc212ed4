package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/configuration-panda/internal/config"
	"github.com/MKhiriev/configuration-panda/internal/logger"
	"github.com/MKhiriev/configuration-panda/internal/panda"
)

type commandContext struct {
	env   panda.Environment
	flags *config.StructuredConfig
	build buildInfo

	config *config.StructuredConfig
}

func newCommandContext(env panda.Environment, build buildInfo) *commandContext {
	return &commandContext{
		env:   env,
		build: build,
	}
}

// prepare merges the command configuration and attaches a logger to the
// command context.
func (c *commandContext) prepare(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(c.env.Environ(), c.flags)
	if err != nil {
		return err
	}

	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		return err
	}

	log := logger.NewLogger("panda", level, cmd.ErrOrStderr())
	cmd.SetContext(log.WithContext(cmd.Context()))
	c.config = cfg

	log.Debug().
		Strs("sources", cfg.Sources).
		Strs("dotenv", cfg.DotEnvFiles).
		Msg("received configs")

	return nil
}

// load applies the dotenv files and runs the loader against the command
// environment.
func (c *commandContext) load(cmd *cobra.Command) (*panda.Panda, error) {
	log := logger.FromContext(cmd.Context())

	if len(c.config.DotEnvFiles) > 0 {
		applied, err := panda.LoadDotEnv(c.env, c.config.DotEnvFiles...)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("variables", len(applied)).Msg("applied dotenv files")
	}

	return panda.New(c.config.Sources,
		panda.WithEnvironment(c.env),
		panda.WithLogger(log),
	)
}

func (c *commandContext) tableOutput() bool {
	return c.config != nil && c.config.Output.Format == config.OutputTable
}
