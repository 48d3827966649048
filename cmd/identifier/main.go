// Command identifier creates, parses and joins named identifiers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Version information set at build time.
var version = "dev"

// options holds the flags shared by every subcommand.
type options struct {
	format  string
	verbose bool
	trace   bool

	logger   *slog.Logger
	provider *sdktrace.TracerProvider
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "identifier",
		Short: "Create, parse and join named identifiers",
		Long: `identifier works with named, GUID-backed identifiers.

Joining merges identifiers by XOR-ing their ids and concatenating their
names in argument order.

Examples:
  identifier new sword shield
  identifier join X=0f0f0f0f-0000-ffff-1234-56789abcdef0 Y=f0f0f0f0-ffff-ffff-1234-000000000000
  identifier join --file loadout.yaml --format yaml
  identifier parse player 6ba7b810-9dad-11d1-80b4-00c04fd430c8`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newRenderer(opts.format); err != nil {
				return err
			}
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if opts.trace {
				provider, err := newTracerProvider(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("failed to initialise tracing: %w", err)
				}
				opts.provider = provider
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.provider == nil {
				return nil
			}
			return opts.provider.Shutdown(cmd.Context())
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json, yaml or proto")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&opts.trace, "trace", false, "Export spans to stderr")

	rootCmd.AddCommand(
		newCmd(opts),
		joinCmd(opts),
		parseCmd(opts),
	)

	return rootCmd
}
