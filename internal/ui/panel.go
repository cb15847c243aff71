package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if done > total {
		done = total
	}
	filled := int(float64(done) / float64(total) * float64(width))
	bar := strings.Repeat(current.BarFilled, filled) + strings.Repeat(current.BarEmpty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames lines with the theme border.
func PanelString(lines []string) string {
	style := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return style.Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box to stdout.
func Panel(lines []string) { fmt.Fprintln(stdout, PanelString(lines)) }
