package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/configuration-panda/internal/config"
	"github.com/MKhiriev/configuration-panda/internal/panda"
)

func newRootCommand(env panda.Environment, build buildInfo) *cobra.Command {
	ctx := newCommandContext(env, build)

	rootCmd := &cobra.Command{
		Use:   "panda",
		Short: "Load JSON configuration directories named by environment variables",
		Long: `panda resolves each source environment variable to a directory, loads every
*.json file in it under its file name, and exports environment_variables.json
into the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, ctx)
		},
	}

	ctx.flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newLoadCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newEnvCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	return cmd.Name() == "version"
}
