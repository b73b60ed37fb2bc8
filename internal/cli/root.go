// Package cli implements the swagdoc command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/swagdoc/internal/petstore"
	"github.com/vitalvas/swagdoc/swagger"
)

// Execute runs the swagdoc CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swagdoc",
		Short:         "Generate Swagger 2.0 documents from documented gorilla/mux routers",
		Long:          "swagdoc serves the documented pet store API, writes its Swagger 2.0 document and converts Swagger 2.0 documents to OpenAPI 3.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(flagError)

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "Document options file (YAML or JSON)")
	pf.String("log-level", "info", "Log level (debug|info|warn|error)")
	pf.String("log-format", "text", "Log format (text|json)")

	for _, sub := range []*cobra.Command{newServeCmd(), newGenerateCmd(), newConvertCmd(), newVersionCmd()} {
		sub.SetFlagErrorFunc(flagError)
		cmd.AddCommand(sub)
	}

	return cmd
}

func flagError(c *cobra.Command, err error) error {
	return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	flags := cmd.Flags()

	levelName, err := flags.GetString("log-level")
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(levelName))); err != nil {
		return nil, newUsageError(fmt.Sprintf("unsupported --log-level %q (allowed: debug, info, warn, error)", levelName))
	}

	format, err := flags.GetString("log-format")
	if err != nil {
		return nil, err
	}

	var w io.Writer = cmd.ErrOrStderr()
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, newUsageError(fmt.Sprintf("unsupported --log-format %q (allowed: text, json)", format))
	}
}

// loadOptions returns the document options from --config, falling back to
// the pet store defaults.
func loadOptions(cmd *cobra.Command) (swagger.Options, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return swagger.Options{}, err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return petstore.DefaultOptions(), nil
	}
	return swagger.LoadOptions(path)
}
