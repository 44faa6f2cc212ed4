package main

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newEnvCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Load all sources and print the exported environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.load(cmd)
			if err != nil {
				return err
			}

			exported := p.Exported()
			if !ctx.tableOutput() {
				return writeJSON(cmd, exported)
			}

			keys := slices.Sorted(maps.Keys(exported))
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{key, exported[key]})
			}
			return writeTable(cmd, []string{"Variable", "Value"}, rows, nil)
		},
	}
}
