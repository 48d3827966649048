package main

import (
	"github.com/spf13/cobra"
	"github.com/zero-day-ai/identifier"
)

func newCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "new [name...]",
		Short: "Create identifiers with fresh random ids",
		Long: `Create one identifier per name. Without names a single unnamed
identifier is created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{""}
			}

			gen := identifier.NewGenerator(identifier.WithLogger(opts.logger))
			ids := make([]*identifier.Identifier, 0, len(args))
			for _, name := range args {
				id, err := gen.New(name)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return render(cmd.OutOrStdout(), opts.format, ids...)
		},
	}
}
