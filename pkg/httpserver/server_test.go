package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekcheck/trekcheck/pkg/httpserver"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

// startServer runs srv in the background and returns its bound address.
func startServer(t *testing.T, ctx context.Context, opts ...httpserver.Option) (*httpserver.Server, string, <-chan error) {
	t.Helper()

	started := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(200 * time.Millisecond),
		httpserver.WithStartHook(func(_ *slog.Logger, addr string) { started <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	select {
	case addr := <-started:
		return srv, addr, done
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return nil, "", nil
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRun_ServesUntilContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, addr, done := startServer(t, ctx)
	assert.Equal(t, addr, srv.Addr())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	waitDone(t, done)
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	var stopped atomic.Bool
	srv, _, done := startServer(t, context.Background(),
		httpserver.WithStopHook(func(_ *slog.Logger) { stopped.Store(true) }),
	)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
	waitDone(t, done)
	assert.True(t, stopped.Load())
}

func TestShutdown_BeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Empty(t, srv.Addr())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()
		err := httpserver.New(httpserver.WithAddr(":invalid")).Run(context.Background(), okHandler())
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		srv, _, done := startServer(t, ctx)

		err := srv.Run(context.Background(), okHandler())
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

		cancel()
		waitDone(t, done)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan string, 1)
	srv := httpserver.NewFromConfig(
		httpserver.Config{Addr: "127.0.0.1:0", ReadTimeout: time.Second},
		httpserver.WithStartHook(func(_ *slog.Logger, addr string) { started <- addr }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	addr := <-started
	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	waitDone(t, done)
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithStopHook(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []func(context.Context) error
		status int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []func(context.Context) error{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("license table missing") },
		}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
