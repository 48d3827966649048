package main

import (
	"github.com/spf13/cobra"
	"github.com/zero-day-ai/identifier"
)

func parseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <name> <id>",
		Short: "Validate an identifier and print its canonical form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identifier.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			opts.logger.Debug("identifier parsed", "identifier", id, "empty", id.IsEmpty())
			return render(cmd.OutOrStdout(), opts.format, id)
		},
	}
}
