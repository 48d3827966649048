package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/identifier"
	"go.opentelemetry.io/otel/codes"
)

func joinCmd(opts *options) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "join [name=id...]",
		Short: "Join identifiers from left to right",
		Long: `Join identifiers given as name=id pairs, or listed in a YAML or JSON
manifest. Manifest identifiers come first, followed by arguments.

Manifest format:
  identifiers:
    - name: X
      id: 0f0f0f0f-0000-ffff-1234-56789abcdef0
    - name: Y
      id: f0f0f0f0-ffff-ffff-1234-000000000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []*identifier.Identifier
			if manifestPath != "" {
				loaded, err := loadManifest(manifestPath)
				if err != nil {
					return err
				}
				ids = append(ids, loaded...)
			}
			for _, arg := range args {
				id, err := parsePair(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			_, span := opts.tracer().Start(cmd.Context(), "identifier.join")
			defer span.End()
			for index, id := range ids {
				id.Annotate(span, fmt.Sprintf("identifier.input.%d", index))
			}

			joined, err := identifier.JoinAll(slices.Values(ids))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			joined.Annotate(span, "identifier.result")
			span.SetStatus(codes.Ok, "")

			opts.logger.Debug("identifiers joined", "count", len(ids), "result", joined)
			return render(cmd.OutOrStdout(), opts.format, joined)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "file", "", "Path to a YAML or JSON identifier manifest")
	return cmd
}

// parsePair parses "name=id". The id is taken after the last '=' so names
// may contain '='.
func parsePair(arg string) (*identifier.Identifier, error) {
	idx := strings.LastIndex(arg, "=")
	if idx < 0 {
		return nil, fmt.Errorf("invalid identifier %q: expected name=id", arg)
	}
	return identifier.Parse(arg[:idx], arg[idx+1:])
}
