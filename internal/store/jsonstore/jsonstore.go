package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todos/internal/model"
)

// JSON snapshot files in the endpoint's wire shape. They back the local
// fixture server and the dump command; the TUI itself never reads them.

// DefaultFile is used when no path is given.
const DefaultFile = "todos.json"

// Load reads a snapshot. A missing file yields an empty list.
func Load(path string) ([]model.Task, error) {
	if path == "" {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Save writes tasks as indented JSON, creating parent directories.
func Save(path string, tasks []model.Task) error {
	if path == "" {
		path = DefaultFile
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
