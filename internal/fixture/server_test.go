package fixture

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/remote"
)

func TestRouterServesTasks(t *testing.T) {
	srv := httptest.NewServer(NewRouter(Sample, log.New(&bytes.Buffer{})))
	defer srv.Close()

	for _, path := range []string{"/", "/todos"} {
		got, err := remote.New(srv.URL+path, time.Second, log.New(&bytes.Buffer{})).Fetch(context.Background())
		require.NoError(t, err, path)
		assert.Equal(t, Sample, got, path)
	}
}

func TestRouterLogsRequests(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	NewRouter(Sample, log.New(&logs)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, logs.String(), "path=/todos")
	assert.Contains(t, logs.String(), "status=200")
}

func TestRouterReadOnly(t *testing.T) {
	srv := httptest.NewServer(NewRouter([]model.Task{}, log.New(&bytes.Buffer{})))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/todos", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouterNilTasksIsEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(nil, log.New(&bytes.Buffer{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", NewRouter(Sample, log.New(&bytes.Buffer{})), log.New(&bytes.Buffer{}))
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
