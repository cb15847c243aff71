package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	add       key.Binding
	toList    key.Binding
	toInput   key.Binding
	up        key.Binding
	down      key.Binding
	toggle    key.Binding
	toggleAll key.Binding
	edit      key.Binding
	del       key.Binding
	clear     key.Binding
	all       key.Binding
	active    key.Binding
	completed key.Binding
	nextRoute key.Binding
	prevRoute key.Binding
	commit    key.Binding
	cancel    key.Binding
	blur      key.Binding
	help      key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func newKeymap() keymap {
	return keymap{
		add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		toList:    key.NewBinding(key.WithKeys("esc", "down"), key.WithHelp("esc/↓", "list")),
		toInput:   key.NewBinding(key.WithKeys("n", "i"), key.WithHelp("n", "new")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		toggleAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle all")),
		edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		del:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		all:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		nextRoute: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next view")),
		prevRoute: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev view")),
		commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		blur:      key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab/↑/↓", "save & leave")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

var keys = newKeymap()

// helpKeys adapts the keymap to bubbles/help for the current focus.
type helpKeys struct{ focus focus }

func (h helpKeys) ShortHelp() []key.Binding {
	switch h.focus {
	case focusInput:
		return []key.Binding{keys.add, keys.toList, keys.nextRoute, keys.help}
	case focusEdit:
		return []key.Binding{keys.commit, keys.blur, keys.cancel}
	default:
		return []key.Binding{keys.toggle, keys.toggleAll, keys.edit, keys.del, keys.nextRoute, keys.help, keys.quit}
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	switch h.focus {
	case focusInput:
		return [][]key.Binding{{keys.add, keys.toList}, {keys.nextRoute, keys.prevRoute}, {keys.help}}
	case focusEdit:
		return [][]key.Binding{{keys.commit, keys.blur, keys.cancel}}
	default:
		return [][]key.Binding{
			{keys.up, keys.down, keys.toInput},
			{keys.toggle, keys.toggleAll, keys.edit, keys.del, keys.clear},
			{keys.all, keys.active, keys.completed, keys.nextRoute, keys.prevRoute},
			{keys.help, keys.quit},
		}
	}
}
