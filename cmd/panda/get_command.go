package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/configuration-panda/internal/panda"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME [KEY...]",
		Short: "Print one configuration, or a value nested inside it",
		Long: `Print the configuration loaded from NAME.json as JSON. Each KEY selects an
object field, or an element by index when the current value is an array.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.load(cmd)
			if err != nil {
				return err
			}

			name, path := args[0], args[1:]
			v, ok := p.Get(name)
			if !ok {
				return fmt.Errorf("%w: %q", panda.ErrConfigurationNotFound, name)
			}

			nested, ok := v.Lookup(path...)
			if !ok {
				return fmt.Errorf("%w: %q has no value at %s", panda.ErrConfigurationNotFound, name, strings.Join(path, "."))
			}

			return writeJSON(cmd, nested)
		},
	}
}
