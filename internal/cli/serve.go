package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vitalvas/swagdoc/internal/petstore"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const shutdownTimeout = 10 * time.Second

// ServeConfig holds the resolved inputs of the serve command.
type ServeConfig struct {
	Addr   string
	H2C    bool
	Router http.Handler
	Logger *slog.Logger
}

var serveRunner = runServe

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pet store API and its documentation",
		Example: strings.TrimSpace(`  swagdoc serve --addr :8080
  swagdoc --config options.yaml serve --h2c`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveServeConfig(cmd)
			if err != nil {
				return err
			}
			return serveRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "Listen address")
	flags.Bool("h2c", false, "Accept HTTP/2 without TLS")

	return cmd
}

func resolveServeConfig(cmd *cobra.Command) (*ServeConfig, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	addr, err := flags.GetString("addr")
	if err != nil {
		return nil, err
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, newUsageError("serve: --addr must not be empty")
	}

	useH2C, err := flags.GetBool("h2c")
	if err != nil {
		return nil, err
	}

	router, _ := petstore.NewRouter(petstore.Config{Options: &opts, Logger: logger})

	return &ServeConfig{
		Addr:   addr,
		H2C:    useH2C,
		Router: router,
		Logger: logger,
	}, nil
}

func runServe(ctx context.Context, cfg *ServeConfig) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serve(ctx, ln, cfg)
}

// serve runs the HTTP server on ln until ctx is done, then drains in-flight
// requests.
func serve(ctx context.Context, ln net.Listener, cfg *ServeConfig) error {
	handler := cfg.Router
	if cfg.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	cfg.Logger.Info("listening",
		slog.String("addr", ln.Addr().String()),
		slog.Bool("h2c", cfg.H2C),
		slog.String("docs", petstore.DocsPath+"/"),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	cfg.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
