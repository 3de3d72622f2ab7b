package layout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Stack builds screen content top to bottom while tracking where each
// block lands, so screens can register click regions for what they draw.
type Stack struct {
	width int
	lines []string
}

// NewStack returns an empty stack for content of the given width.
func NewStack(width int) *Stack {
	return &Stack{width: width}
}

// Gap appends n blank lines.
func (s *Stack) Gap(n int) {
	for range n {
		s.lines = append(s.lines, "")
	}
}

// Center appends block centered horizontally and returns its top-left
// corner.
func (s *Stack) Center(block string) (x, y int) {
	x = CenterOffset(s.width, lipgloss.Width(block))
	return x, s.At(x, block)
}

// At appends block indented by x columns and returns the row it starts on.
func (s *Stack) At(x int, block string) int {
	y := len(s.lines)
	pad := strings.Repeat(" ", max(x, 0))
	for _, line := range strings.Split(block, "\n") {
		s.lines = append(s.lines, pad+line)
	}
	return y
}

// Height is the number of rows appended so far.
func (s *Stack) Height() int {
	return len(s.lines)
}

// String joins the appended rows.
func (s *Stack) String() string {
	return strings.Join(s.lines, "\n")
}

// Place centers the stack vertically in height rows. It returns the
// content and the number of blank rows put above it.
func (s *Stack) Place(height int) (string, int) {
	top := 0
	if h := len(s.lines); h < height {
		top = (height - h) / 2
	}
	return strings.Repeat("\n", top) + s.String(), top
}

// CenterOffset is the left margin that centers a block of blockWidth
// inside width.
func CenterOffset(width, blockWidth int) int {
	if blockWidth >= width {
		return 0
	}
	return (width - blockWidth) / 2
}
