package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "#####-----  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "-----   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "##### 100%", ProgressBar(9, 3, 5))
}

func TestPaintWithoutColour(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)

	assert.Equal(t, "plain", Paint(Current().Error, "plain"))
}

func TestOKAndFailWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)
	SetTheme("mono")
	defer SetTheme("classic")

	OK("fetched")
	Fail("boom")
	Hint("try again")

	assert.Equal(t, "x fetched\n", out.String())
	assert.Equal(t, "! boom\nHint: try again\n", errOut.String())
}

func TestPanelFramesLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	got := PanelString([]string{"one", "three"})
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "one")
	assert.Contains(t, lines[2], "three")
}

func TestSetThemeUnknownFallsBack(t *testing.T) {
	SetTheme("sparkly")
	assert.Equal(t, "classic", Current().Name)
}

func TestDisableColourStripsLipglossStyles(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() {
		SetColorForcing(false, false)
		lipgloss.SetColorProfile(prev)
	})

	SetColorForcing(false, true)

	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "x", lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("x"))
}
