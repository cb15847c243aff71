// Package tui is the interactive todo view: one in-memory list, one fetch on
// start, and a Bubble Tea update loop driving every mutation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// FetchFunc loads the initial task list.
type FetchFunc func(ctx context.Context) ([]model.Task, error)

type Options struct {
	Fetch   FetchFunc
	Timeout time.Duration
	Route   model.Filter
	Logger  *log.Logger
}

type focus int

const (
	focusInput focus = iota
	focusList
	focusEdit
)

type (
	tasksLoadedMsg []model.Task
	fetchFailedMsg struct{ err error }
)

// Model is the Bubble Tea model. The task list is owned here and nowhere else.
type Model struct {
	tasks *model.List
	route model.Filter

	list   list.Model
	input  textinput.Model
	editor textinput.Model
	spin   spinner.Model
	help   help.Model

	focus  focus
	editID string

	fetch   FetchFunc
	timeout time.Duration
	logger  *log.Logger

	loading bool
	loadErr error
	status  string

	width, height int
}

func New(opts Options) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = ui.Current().Help
	l.DisableQuitKeybindings()

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "What needs to be done?"
	in.CharLimit = 200
	in.Focus()

	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	m := Model{
		tasks:   model.NewList(nil),
		route:   opts.Route,
		list:    l,
		input:   in,
		editor:  ed,
		spin:    sp,
		help:    help.New(),
		focus:   focusInput,
		fetch:   opts.Fetch,
		timeout: timeout,
		logger:  logger,
		loading: opts.Fetch != nil,
	}
	m.resize(ui.Size())
	return m
}

func (m Model) Init() tea.Cmd {
	if m.fetch == nil {
		return textinput.Blink
	}
	return tea.Batch(fetchCmd(m.fetch, m.timeout), m.spin.Tick, textinput.Blink)
}

func fetchCmd(fetch FetchFunc, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tasks, err := fetch(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return tasksLoadedMsg(tasks)
	}
}

// Tasks returns every task in order, regardless of the current route.
func (m Model) Tasks() []model.Task { return m.tasks.Tasks() }

// Route is the current view.
func (m Model) Route() model.Filter { return m.route }

// Visible is the derived, filtered view.
func (m Model) Visible() []model.Task { return m.tasks.Filtered(m.route) }

// Err is the fetch failure, if any.
func (m Model) Err() error { return m.loadErr }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		// Anything added while the fetch was in flight stays on top.
		m.tasks.Reset(append(m.tasks.Tasks(), msg...))
		m.status = fmt.Sprintf("loaded %d todos", len(msg))
		m.logger.Info("todos loaded", "count", len(msg))
		m.refresh()
		return m, nil

	case fetchFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		m.logger.Error("could not load todos", "err", msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusEdit:
			return m.updateEdit(msg)
		case focusList:
			return m.updateList(msg)
		default:
			return m.updateInput(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.add):
		if t, ok := m.tasks.Add(m.input.Value()); ok {
			m.input.SetValue("")
			m.status = "added " + t.Title
			m.logger.Debug("add", "id", t.ID)
			m.refresh()
			m.selectID(t.ID)
		}
		return m, nil
	case key.Matches(msg, keys.toList):
		m.input.Blur()
		m.focus = focusList
		return m, nil
	case msg.Type == tea.KeyTab:
		// Only tab cycles here; h/l and the arrows belong to the text field.
		m.setRoute(m.route.Next())
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setRoute(m.route.Prev())
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.toInput),
		key.Matches(msg, keys.up) && m.list.Index() == 0:
		cmd := m.focusInput()
		return m, cmd
	case key.Matches(msg, keys.toggle):
		if t, ok := m.selected(); ok {
			m.tasks.Toggle(t.ID)
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, keys.toggleAll):
		m.tasks.ToggleAll()
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.edit):
		if t, ok := m.selected(); ok {
			m.editID = t.ID
			m.editor.SetValue(t.Title)
			m.editor.CursorEnd()
			m.focus = focusEdit
			cmd := m.editor.Focus()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, keys.del):
		if t, ok := m.selected(); ok {
			m.tasks.Delete(t.ID)
			m.status = "deleted " + t.Title
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, keys.clear):
		n := m.tasks.ClearCompleted()
		m.status = fmt.Sprintf("cleared %d completed", n)
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.all):
		m.setRoute(model.FilterAll)
		return m, nil
	case key.Matches(msg, keys.active):
		m.setRoute(model.FilterActive)
		return m, nil
	case key.Matches(msg, keys.completed):
		m.setRoute(model.FilterCompleted)
		return m, nil
	case key.Matches(msg, keys.nextRoute):
		m.setRoute(m.route.Next())
		return m, nil
	case key.Matches(msg, keys.prevRoute):
		m.setRoute(m.route.Prev())
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateEdit commits on enter or when focus leaves the editor, and never
// touches the list on individual keystrokes.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.commit):
		m.commitEdit()
		return m, nil
	case key.Matches(msg, keys.cancel):
		m.endEdit()
		return m, nil
	case key.Matches(msg, keys.blur):
		id := m.editID
		m.commitEdit()
		_, kept := m.tasks.Get(id)
		// A deleted row already moved the cursor onto its successor.
		if msg.String() == "up" || (msg.String() == "down" && kept) {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	if m.tasks.Rename(m.editID, m.editor.Value()) {
		if _, still := m.tasks.Get(m.editID); !still {
			m.status = "deleted empty todo"
		}
	}
	m.endEdit()
	m.refresh()
}

func (m *Model) endEdit() {
	m.editID = ""
	m.editor.SetValue("")
	m.editor.Blur()
	m.focus = focusList
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) setRoute(f model.Filter) {
	if f == m.route {
		return
	}
	m.route = f
	m.logger.Debug("route", "path", f.Path())
	m.refresh()
}

func (m Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

// refresh re-derives the visible items from the list and route, keeping the
// cursor on the same task when it is still visible.
func (m *Model) refresh() {
	prevID := ""
	if t, ok := m.selected(); ok {
		prevID = t.ID
	}
	prevIdx := m.list.Index()

	visible := m.tasks.Filtered(m.route)
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, listItem{task: t})
	}
	m.list.SetItems(items)

	if prevID != "" && m.selectID(prevID) {
		return
	}
	if prevIdx >= len(items) {
		prevIdx = len(items) - 1
	}
	if prevIdx < 0 {
		prevIdx = 0
	}
	m.list.Select(prevIdx)
}

func (m *Model) selectID(id string) bool {
	for i, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.task.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

// chromeHeight is everything around the list: border, header, input, footer,
// status and help lines.
const chromeHeight = 10

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	lh := h - chromeHeight
	if lh < 3 {
		lh = 3
	}
	m.list.SetSize(w-4, lh)
	m.input.Width = w - 10
	m.editor.Width = w - 12
	m.help.Width = w - 4
}
