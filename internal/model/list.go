package model

import (
	"fmt"
	"strings"
)

// List is the in-memory, ordered task list owned by the view.
// It is not safe for concurrent use; all mutations come from one event loop.
type List struct {
	tasks []Task
	newID func() string
}

// NewList wraps tasks (copied) in a List.
func NewList(tasks []Task) *List {
	l := &List{newID: NewID}
	l.Reset(tasks)
	return l
}

// Reset replaces the contents, e.g. after the initial fetch. Every id after
// the first occurrence of a repeated one is replaced with a fresh id, so
// row-level operations never hit the wrong task.
func (l *List) Reset(tasks []Task) {
	l.tasks = append(make([]Task, 0, len(tasks)), tasks...)
	seen := make(map[string]struct{}, len(l.tasks))
	for i := range l.tasks {
		if _, dup := seen[l.tasks[i].ID]; dup || l.tasks[i].ID == "" {
			l.tasks[i].ID = l.generateID()
		}
		seen[l.tasks[i].ID] = struct{}{}
	}
}

// Tasks returns a copy of every task in insertion order.
func (l *List) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

func (l *List) Len() int { return len(l.tasks) }

// Get returns the task with the given id.
func (l *List) Get(id string) (Task, bool) {
	if i := l.index(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

// Add prepends a task with the trimmed title. Whitespace-only titles add nothing.
func (l *List) Add(title string) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}
	t := Task{ID: l.generateID(), Title: title}
	l.tasks = append([]Task{t}, l.tasks...)
	return t, true
}

// Toggle flips IsDone of the task with the given id only.
func (l *List) Toggle(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].IsDone = !l.tasks[i].IsDone
	return true
}

// ToggleAll marks everything done unless everything already is, in which
// case everything goes back to active.
func (l *List) ToggleAll() {
	done := !l.AllDone()
	for i := range l.tasks {
		l.tasks[i].IsDone = done
	}
}

// Rename sets a trimmed title. An empty title deletes the task.
func (l *List) Rename(id, title string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	title = strings.TrimSpace(title)
	if title == "" {
		l.removeAt(i)
		return true
	}
	l.tasks[i].Title = title
	return true
}

// Delete removes exactly one task.
func (l *List) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// ClearCompleted drops every done task and returns how many went.
func (l *List) ClearCompleted() int {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.IsDone {
			kept = append(kept, t)
		}
	}
	n := len(l.tasks) - len(kept)
	clear(l.tasks[len(kept):])
	l.tasks = kept
	return n
}

// Filtered derives the view for f, preserving order.
func (l *List) Filtered(f Filter) []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) ActiveCount() int {
	n := 0
	for _, t := range l.tasks {
		if !t.IsDone {
			n++
		}
	}
	return n
}

func (l *List) CompletedCount() int { return len(l.tasks) - l.ActiveCount() }

// AllDone is true for an empty list as well.
func (l *List) AllDone() bool { return l.ActiveCount() == 0 }

func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) generateID() string {
	if l.newID == nil {
		return NewID()
	}
	return l.newID()
}

func (l *List) removeAt(i int) {
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
}

// ItemsLeft renders the footer counter.
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
