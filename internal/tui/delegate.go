package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// listItem adapts a Task to bubbles/list.Item.
type listItem struct{ task model.Task }

func (i listItem) Title() string       { return i.task.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.task.Title }

// itemDelegate renders one task per line. The inline editor replaces the
// row of the task being edited.
type itemDelegate struct {
	focused   bool
	editingID string
	editor    string
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	th := ui.Current()

	prefix := "  "
	if index == m.Index() && (d.focused || d.editingID != "") {
		prefix = th.Selected.Render(">") + " "
	}

	box := th.Muted.Render(th.BoxUnchecked)
	text := it.task.Title
	if it.task.IsDone {
		box = th.Success.Render(th.BoxChecked)
		text = th.Done.Render(text)
	}
	if it.task.ID == d.editingID {
		text = d.editor
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
