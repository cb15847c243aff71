package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/fixture"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
	"github.com/idilsaglam/todos/internal/ui"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	ui.SetTheme("mono")
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.SetTheme("classic")
	})
	return &out, &errOut
}

func optionsFor(t *testing.T, endpoint string) Options {
	t.Helper()
	cfg := config.Default()
	cfg.Endpoint = endpoint
	cfg.LogLevel = "error"
	return Options{Config: cfg, ConfigPath: filepath.Join(t.TempDir(), "config.toml")}
}

func fixtureServer(t *testing.T, tasks []model.Task) string {
	t.Helper()
	srv := httptest.NewServer(fixture.NewRouter(tasks, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv.URL + "/todos"
}

var sample = []model.Task{
	{ID: "1", Title: "Buy milk"},
	{ID: "2", Title: "Pay rent", IsDone: true},
}

func TestUnknownSubcommand(t *testing.T) {
	capture(t)
	assert.Equal(t, 2, Run([]string{"frobnicate"}, optionsFor(t, "http://127.0.0.1:1/")))
}

func TestListActive(t *testing.T) {
	out, _ := capture(t)
	code := Run([]string{"ls", "--route", "/active"}, optionsFor(t, fixtureServer(t, sample)))

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Buy milk")
	assert.NotContains(t, out.String(), "Pay rent")
	assert.Contains(t, out.String(), "1 item left")
}

func TestListGrouped(t *testing.T) {
	out, _ := capture(t)
	code := Run([]string{"ls", "--group"}, optionsFor(t, fixtureServer(t, sample)))

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Active")
	assert.Contains(t, out.String(), "Completed")
	assert.Contains(t, out.String(), "[x] Pay rent")
}

func TestListBadRoute(t *testing.T) {
	capture(t)
	assert.Equal(t, 2, Run([]string{"ls", "--route", "/archived"}, optionsFor(t, fixtureServer(t, sample))))
}

func TestListFetchFailure(t *testing.T) {
	_, errOut := capture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Equal(t, 1, Run([]string{"ls"}, optionsFor(t, srv.URL)))
	assert.Contains(t, errOut.String(), "could not load todos")
	assert.Contains(t, errOut.String(), "Hint:")
}

func TestDumpWritesFixture(t *testing.T) {
	capture(t)
	path := filepath.Join(t.TempDir(), "todos.json")

	require.Equal(t, 0, Run([]string{"dump", path}, optionsFor(t, fixtureServer(t, sample))))

	got, err := jsonstore.Load(path)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestDumpUsage(t *testing.T) {
	capture(t)
	assert.Equal(t, 2, Run([]string{"dump"}, optionsFor(t, "http://127.0.0.1:1/")))
}

func TestConfigInit(t *testing.T) {
	capture(t)
	opt := optionsFor(t, config.DefaultEndpoint)

	require.Equal(t, 0, Run([]string{"config", "init"}, opt))
	_, err := os.Stat(opt.ConfigPath)
	require.NoError(t, err)

	assert.Equal(t, 1, Run([]string{"config", "init"}, opt), "refuses to overwrite")
}

func TestRenderListNumbersVisibleItems(t *testing.T) {
	capture(t)
	lines := renderList(model.NewList(sample), model.FilterCompleted, false)

	assert.Contains(t, lines, " 1. [x] Pay rent")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate(" short ", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestFixtureTasksFallsBackToSample(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	got, err := fixtureTasks(filepath.Join(t.TempDir(), "missing.json"), logger)
	require.NoError(t, err)
	assert.Equal(t, fixture.Sample, got)
	assert.Contains(t, logs.String(), "fixture file not found")

	got, err = fixtureTasks("", logger)
	require.NoError(t, err)
	assert.Equal(t, fixture.Sample, got)
}

func TestFixtureTasksReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, jsonstore.Save(path, sample))

	got, err := fixtureTasks(path, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}
