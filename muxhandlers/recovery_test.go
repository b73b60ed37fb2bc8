package muxhandlers

import (
	"bufio"
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a JSON logger writing to buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// logRecords decodes every JSON log line in buf.
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCode  int
		wantPanic string
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			},
			wantCode: http.StatusAccepted,
		},
		{
			name: "panic returns 500",
			handler: func(_ http.ResponseWriter, _ *http.Request) {
				panic("something went wrong")
			},
			wantCode:  http.StatusInternalServerError,
			wantPanic: "something went wrong",
		},
		{
			name: "panic with integer value",
			handler: func(_ http.ResponseWriter, _ *http.Request) {
				panic(42)
			},
			wantCode:  http.StatusInternalServerError,
			wantPanic: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			r := mux.NewRouter()
			r.HandleFunc("/test", tt.handler).Methods(http.MethodGet)
			r.Use(RecoveryMiddleware(RecoveryConfig{Logger: newTestLogger(&buf)}))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantCode, w.Code)

			records := logRecords(t, &buf)
			if tt.wantPanic == "" {
				assert.Empty(t, records)
				return
			}

			assert.Contains(t, w.Body.String(), http.StatusText(http.StatusInternalServerError))
			require.Len(t, records, 1)
			assert.Equal(t, "ERROR", records[0]["level"])
			assert.Equal(t, "panic recovered", records[0]["msg"])
			assert.Equal(t, tt.wantPanic, records[0]["panic"])
			assert.Equal(t, "/test", records[0]["path"])
			assert.NotContains(t, records[0], "stack")
		})
	}

	t.Run("request id and stack logged", func(t *testing.T) {
		var buf bytes.Buffer

		r := mux.NewRouter()
		r.HandleFunc("/test", func(_ http.ResponseWriter, _ *http.Request) {
			panic("boom")
		}).Methods(http.MethodGet)
		r.Use(RequestIDMiddleware(RequestIDConfig{Generate: func(_ *http.Request) string { return "req-1" }}))
		r.Use(RecoveryMiddleware(RecoveryConfig{Logger: newTestLogger(&buf), PrintStack: true}))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		records := logRecords(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "req-1", records[0]["request_id"])
		assert.Contains(t, records[0]["stack"], "goroutine")
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/test", func(_ http.ResponseWriter, _ *http.Request) {
			panic(http.ErrAbortHandler)
		}).Methods(http.MethodGet)
		r.Use(RecoveryMiddleware(RecoveryConfig{Logger: newTestLogger(&bytes.Buffer{})}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
		})
	})
}

func BenchmarkRecoveryMiddleware(b *testing.B) {
	r := mux.NewRouter()
	r.HandleFunc("/test", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.Use(RecoveryMiddleware(RecoveryConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	b.ResetTimer()
	for b.Loop() {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}
