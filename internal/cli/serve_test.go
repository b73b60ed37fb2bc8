package cli

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/swagdoc/internal/petstore"
)

func TestServeConfig(t *testing.T) {
	t.Cleanup(func() { serveRunner = runServe })

	var captured *ServeConfig
	serveRunner = func(_ context.Context, cfg *ServeConfig) error {
		captured = cfg
		return nil
	}

	_, err := execute(t, "", "--log-format", "json", "serve", "--addr", "127.0.0.1:9999", "--h2c")
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "127.0.0.1:9999", captured.Addr)
	assert.True(t, captured.H2C)
	assert.NotNil(t, captured.Router)
	assert.NotNil(t, captured.Logger)
}

func TestServe(t *testing.T) {
	for _, useH2C := range []bool{false, true} {
		name := "http1"
		if useH2C {
			name = "h2c"
		}

		t.Run(name, func(t *testing.T) {
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			router, _ := petstore.NewRouter(petstore.Config{Logger: logger})

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- serve(ctx, ln, &ServeConfig{H2C: useH2C, Router: router, Logger: logger})
			}()

			resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, resp.Body.Close())
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "ok", string(body))

			cancel()

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not shut down")
			}
		})
	}
}

func TestRunServeListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = runServe(context.Background(), &ServeConfig{Addr: ln.Addr().String(), Logger: logger})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
