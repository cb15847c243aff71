package model

import "github.com/google/uuid"

// Task is the domain model for a todo entry.
// The JSON names match the remote endpoint.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

// NewID returns a fresh client-side id. Uniqueness is probabilistic only.
func NewID() string { return uuid.NewString() }
