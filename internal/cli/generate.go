package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vitalvas/swagdoc/internal/petstore"
	"github.com/vitalvas/swagdoc/swagger"
)

// GenerateConfig captures the inputs of the generate command after merging
// the options file with CLI overrides.
type GenerateConfig struct {
	Options  swagger.Options
	Format   string
	OpenAPI3 bool
	Out      string
	Logger   *slog.Logger
	Stdout   io.Writer
}

var generateRunner = runGenerate

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the Swagger document of the pet store API",
		Long: "Build the pet store router, walk it and write the assembled Swagger 2.0 document. " +
			"With --openapi3 the document is converted to OpenAPI 3 first.",
		Example: strings.TrimSpace(`  swagdoc generate --format yaml --out swagger.yaml
  swagdoc --config options.yaml generate --host api.example.com --base-path /v1 --openapi3`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveGenerateConfig(cmd)
			if err != nil {
				return err
			}
			return generateRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("format", formatJSON, "Output format (json|yaml)")
	flags.Bool("openapi3", false, "Convert the document to OpenAPI 3")
	flags.StringP("out", "o", "", "Output file (stdout when omitted)")
	flags.String("host", "", "Override the document host")
	flags.String("base-path", "", "Override the document base path")

	return cmd
}

func resolveGenerateConfig(cmd *cobra.Command) (*GenerateConfig, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return nil, err
	}

	cfg := GenerateConfig{
		Options: opts,
		Logger:  logger,
		Stdout:  cmd.OutOrStdout(),
	}

	if err := applyGenerateFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	if cfg.Format, err = normalizeFormat(cfg.Format); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyGenerateFlagOverrides(flags *pflag.FlagSet, cfg *GenerateConfig) error {
	var err error

	if cfg.Format, err = flags.GetString("format"); err != nil {
		return err
	}
	if cfg.OpenAPI3, err = flags.GetBool("openapi3"); err != nil {
		return err
	}
	if cfg.Out, err = flags.GetString("out"); err != nil {
		return err
	}
	cfg.Out = strings.TrimSpace(cfg.Out)

	if flags.Changed("host") {
		value, err := flags.GetString("host")
		if err != nil {
			return err
		}
		cfg.Options.Host = strings.TrimSpace(value)
	}
	if flags.Changed("base-path") {
		value, err := flags.GetString("base-path")
		if err != nil {
			return err
		}
		cfg.Options.BasePath = strings.TrimSpace(value)
	}

	return nil
}

func runGenerate(_ context.Context, cfg *GenerateConfig) error {
	router, spec := petstore.NewRouter(petstore.Config{Options: &cfg.Options, Logger: cfg.Logger})
	doc := spec.Build(router)

	var v any = doc
	if cfg.OpenAPI3 {
		v3, err := swagger.ToV3(doc)
		if err != nil {
			return err
		}
		v = v3
	}

	data, err := encode(v, cfg.Format)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Stdout, cfg.Out, data); err != nil {
		return err
	}

	cfg.Logger.Debug("document generated",
		slog.Int("paths", len(doc.Paths)),
		slog.Int("definitions", len(doc.Definitions)),
		slog.Bool("openapi3", cfg.OpenAPI3),
		slog.String("out", cfg.Out),
	)
	return nil
}
