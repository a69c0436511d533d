package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hanpama/gqlkit/internal/logging"
	"github.com/hanpama/gqlkit/internal/otel"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gqlkit:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel     string
	otelEndpoint string
	otelService  string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	var shutdown func(context.Context) error

	root := &cobra.Command{
		Use:           "gqlkit",
		Short:         "GraphQL schema composition and type inspection tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(strings.ToLower(opts.logLevel))
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logging.SetGlobalLogger(zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
				Level(level).With().Timestamp().Logger())

			shutdown, err = otel.Setup(opts.otelEndpoint, opts.otelService)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.otelEndpoint, "otel.endpoint", "", "OTLP collector endpoint (tracing disabled when empty)")
	flags.StringVar(&opts.otelService, "otel.service", "gqlkit", "OpenTelemetry service name")

	root.AddCommand(
		newComposeCommand(),
		newClassifyCommand(),
		newCheckCommand(),
		newRewriteCommand(),
	)
	return root
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
