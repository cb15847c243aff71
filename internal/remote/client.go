// Package remote performs the one-shot fetch of the task list.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todos/internal/model"
)

const maxBody = 1 << 20

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidPayload is returned when the body is not an array of tasks.
	ErrInvalidPayload = errors.New("invalid payload")
)

const tasksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "isDone"],
    "properties": {
      "id": {"type": ["string", "integer"], "minLength": 1},
      "title": {"type": "string"},
      "isDone": {"type": "boolean"}
    }
  }
}`

var schema = compileSchema()

func compileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("tasks.json", strings.NewReader(tasksSchema)); err != nil {
		panic(err)
	}
	return c.MustCompile("tasks.json")
}

// Client fetches tasks from a read-only JSON endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
	Logger   *log.Logger
}

func New(endpoint string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
		Logger:   logger,
	}
}

// Fetch issues a single GET. There are no retries.
func (c *Client) Fetch(ctx context.Context) ([]model.Task, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		c.logger().Error("fetch failed", "endpoint", c.Endpoint, "err", err)
		return nil, fmt.Errorf("get %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger().Error("fetch failed", "endpoint", c.Endpoint, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBody {
		return nil, fmt.Errorf("%w: body larger than %d bytes", ErrInvalidPayload, maxBody)
	}

	tasks, err := Decode(body)
	if err != nil {
		c.logger().Error("fetch failed", "endpoint", c.Endpoint, "err", err)
		return nil, err
	}
	c.logger().Info("fetched tasks", "count", len(tasks), "took", time.Since(start).Round(time.Millisecond))
	return tasks, nil
}

// Decode validates body against the task schema and decodes it.
func Decode(body []byte) ([]model.Task, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(violations(err), "; "))
	}
	var wire []struct {
		ID     json.RawMessage `json:"id"`
		Title  string          `json:"title"`
		IsDone bool            `json:"isDone"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	tasks := make([]model.Task, 0, len(wire))
	for _, w := range wire {
		tasks = append(tasks, model.Task{ID: rawID(w.ID), Title: w.Title, IsDone: w.IsDone})
	}
	return tasks, nil
}

// rawID accepts string ids as well as the integer ids some mock servers emit.
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func violations(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func (c *Client) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
