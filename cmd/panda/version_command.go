package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildInfo carries build-time metadata injected by linker flags.
type buildInfo struct {
	version string
	date    string
	commit  string
}

func newBuildInfo(version, date, commit string) buildInfo {
	return buildInfo{
		version: valueOrNA(version),
		date:    valueOrNA(date),
		commit:  valueOrNA(commit),
	}
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", ctx.build.version)
			fmt.Fprintf(out, "Build date: %s\n", ctx.build.date)
			fmt.Fprintf(out, "Build commit: %s\n", ctx.build.commit)
			return nil
		},
	}
}
