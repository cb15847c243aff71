package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the program on the alt screen and blocks until the user quits.
// Nothing is saved on exit.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
