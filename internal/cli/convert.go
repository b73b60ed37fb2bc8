package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/swagdoc/swagger"
)

// ConvertConfig holds the resolved inputs of the convert command.
type ConvertConfig struct {
	Input  string
	Format string
	Out    string
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

var convertRunner = runConvert

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a Swagger 2.0 document to OpenAPI 3",
		Example: strings.TrimSpace(`  swagdoc convert --input swagger.yaml --format yaml --out openapi.yaml
  cat swagger.json | swagdoc convert --input -`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConvertConfig(cmd)
			if err != nil {
				return err
			}
			return convertRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "Swagger 2.0 document to convert, - for stdin")
	flags.String("format", formatJSON, "Output format (json|yaml)")
	flags.StringP("out", "o", "", "Output file (stdout when omitted)")

	return cmd
}

func resolveConvertConfig(cmd *cobra.Command) (*ConvertConfig, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	cfg := ConvertConfig{
		Logger: logger,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
	}

	if cfg.Input, err = flags.GetString("input"); err != nil {
		return nil, err
	}
	cfg.Input = strings.TrimSpace(cfg.Input)
	if cfg.Input == "" {
		return nil, newUsageError("convert: --input is required")
	}

	if cfg.Format, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.Format, err = normalizeFormat(cfg.Format); err != nil {
		return nil, err
	}

	if cfg.Out, err = flags.GetString("out"); err != nil {
		return nil, err
	}
	cfg.Out = strings.TrimSpace(cfg.Out)

	return &cfg, nil
}

func runConvert(_ context.Context, cfg *ConvertConfig) error {
	var (
		data []byte
		err  error
	)
	if cfg.Input == "-" {
		data, err = io.ReadAll(cfg.Stdin)
	} else {
		data, err = os.ReadFile(cfg.Input)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	doc, err := swagger.ConvertV2(data)
	if err != nil {
		return err
	}

	out, err := encode(doc, cfg.Format)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Stdout, cfg.Out, out); err != nil {
		return err
	}

	cfg.Logger.Debug("document converted",
		slog.String("input", cfg.Input),
		slog.String("openapi", doc.OpenAPI),
		slog.Int("paths", len(doc.Paths)),
	)
	return nil
}
