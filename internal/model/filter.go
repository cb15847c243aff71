package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoute is returned for a view path or filter name outside the three views.
var ErrUnknownRoute = errors.New("unknown route")

// Filter selects which tasks a view renders.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in route order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label is the tab caption.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Path is the view route the filter is derived from.
func (f Filter) Path() string {
	switch f {
	case FilterActive:
		return "/active"
	case FilterCompleted:
		return "/completed"
	default:
		return "/"
	}
}

// Match reports whether t belongs in the view.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.IsDone
	case FilterCompleted:
		return t.IsDone
	default:
		return true
	}
}

// Next cycles to the following route, wrapping around.
func (f Filter) Next() Filter { return Filters[(int(f)+1)%len(Filters)] }

// Prev cycles to the previous route, wrapping around.
func (f Filter) Prev() Filter { return Filters[(int(f)+len(Filters)-1)%len(Filters)] }

// FilterFromPath maps a view route to its filter.
func FilterFromPath(path string) (Filter, error) {
	p := strings.ToLower(strings.TrimSpace(path))
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	switch p {
	case "/", "":
		return FilterAll, nil
	case "/active":
		return FilterActive, nil
	case "/completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}

// ParseFilter accepts a filter name (all, active, completed) or a route path.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "/") {
		return FilterFromPath(s)
	}
	switch strings.ToLower(s) {
	case "all", "":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownRoute, s)
}
