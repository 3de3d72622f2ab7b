package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

// ButtonState selects how a button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// Button is a bordered, clickable label.
type Button struct {
	Label string
	State ButtonState
}

// NewButton creates a new button.
func NewButton(label string, state ButtonState) Button {
	return Button{Label: label, State: state}
}

// View renders the button.
func (b Button) View() string {
	switch b.State {
	case ButtonSelected:
		return theme.ButtonActive.Render(b.Label)
	case ButtonDisabled:
		return theme.ButtonDisabled.Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// Size is the rendered width and height of the button.
func (b Button) Size() (width, height int) {
	v := b.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}

// ButtonRow lays buttons out left to right separated by gap columns.
// Offsets holds the left column of each button within View.
type ButtonRow struct {
	View    string
	Offsets []int
	Widths  []int
	Height  int
}

// NewButtonRow renders buttons side by side.
func NewButtonRow(buttons []Button, gap int) ButtonRow {
	row := ButtonRow{
		Offsets: make([]int, 0, len(buttons)),
		Widths:  make([]int, 0, len(buttons)),
	}
	parts := make([]string, 0, 2*len(buttons))
	x := 0
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			x += gap
		}
		v := b.View()
		w := lipgloss.Width(v)
		row.Offsets = append(row.Offsets, x)
		row.Widths = append(row.Widths, w)
		row.Height = max(row.Height, lipgloss.Height(v))
		parts = append(parts, v)
		x += w
	}
	row.View = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return row
}

// Width is the total width of the row.
func (r ButtonRow) Width() int {
	if len(r.Offsets) == 0 {
		return 0
	}
	last := len(r.Offsets) - 1
	return r.Offsets[last] + r.Widths[last]
}
