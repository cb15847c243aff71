package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

func (m Model) View() string {
	th := ui.Current()
	var b strings.Builder

	b.WriteString(th.Title.Render("todos"))
	b.WriteString("  ")
	b.WriteString(th.Muted.Render(m.route.Path()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " Loading todos...")
	case m.loadErr != nil:
		b.WriteString(th.Error.Render(th.SymFail + " could not load todos: " + m.loadErr.Error()))
	default:
		b.WriteString(th.Muted.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(m.toggleAllMark() + " " + m.inputLine())
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(strings.Repeat("─", max(m.width-6, 10))))
	b.WriteString("\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(th.Muted.Render(emptyText(m.route, m.tasks.Len(), m.loading)))
		b.WriteString("\n")
	} else {
		m.list.SetDelegate(itemDelegate{
			focused:   m.focus == focusList,
			editingID: m.editID,
			editor:    m.editor.View(),
		})
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(m.help.View(helpKeys{focus: m.focus}))

	return lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1).
		Render(b.String())
}

// allChecked is true only when the list is non-empty and fully done.
func (m Model) allChecked() bool {
	return m.tasks.Len() > 0 && m.tasks.AllDone()
}

func (m Model) toggleAllMark() string {
	th := ui.Current()
	if m.allChecked() {
		return th.Success.Render(th.SymToggleAll)
	}
	return th.Muted.Render(th.SymToggleAll)
}

func (m Model) inputLine() string {
	if m.focus == focusInput {
		return m.input.View()
	}
	if v := m.input.Value(); v != "" {
		return v
	}
	return ui.Current().Muted.Render(m.input.Placeholder)
}

func (m Model) footer() string {
	th := ui.Current()
	parts := []string{th.Pending.Render(model.ItemsLeft(m.tasks.ActiveCount()))}

	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == m.route {
			tabs = append(tabs, th.TabActive.Render(f.Label()))
		} else {
			tabs = append(tabs, th.Tab.Render(f.Label()))
		}
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))

	if m.tasks.CompletedCount() > 0 {
		parts = append(parts, th.Accent.Render("Clear completed (C)"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, join(parts, "   ")...)
}

func join(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func emptyText(route model.Filter, total int, loading bool) string {
	switch {
	case loading:
		return ""
	case total == 0:
		return "Nothing to do yet."
	case route == model.FilterActive:
		return "Everything is done."
	case route == model.FilterCompleted:
		return "Nothing completed yet."
	}
	return ""
}
