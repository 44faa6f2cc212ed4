package main

import (
	"github.com/spf13/cobra"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load all sources and print every configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, ctx)
		},
	}
}

func runLoad(cmd *cobra.Command, ctx *commandContext) error {
	p, err := ctx.load(cmd)
	if err != nil {
		return err
	}

	if !ctx.tableOutput() {
		return writeJSON(cmd, p.All())
	}

	names := p.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		v, _ := p.Get(name)
		origin, _ := p.Origin(name)
		rows = append(rows, []string{name, v.Kind().String(), origin})
	}

	return writeTable(cmd,
		[]string{"Name", "Kind", "Source Variable"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	)
}
