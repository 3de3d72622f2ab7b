package input

import (
	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

// TargetKind identifies what a clickable region does.
type TargetKind int

const (
	TargetMode TargetKind = iota + 1
	TargetNote
	TargetRepeat
	TargetConfirm
)

// Target is the semantic meaning of a button.
type Target struct {
	Kind TargetKind
	Mode quiz.Mode
	Note notes.Note
}

// ModeTarget, NoteTarget, RepeatTarget and ConfirmTarget build targets.
func ModeTarget(m quiz.Mode) Target  { return Target{Kind: TargetMode, Mode: m} }
func NoteTarget(n notes.Note) Target { return Target{Kind: TargetNote, Note: n} }
func RepeatTarget() Target           { return Target{Kind: TargetRepeat} }
func ConfirmTarget() Target          { return Target{Kind: TargetConfirm} }

// Event returns the quiz event a click on t produces.
func (t Target) Event() quiz.Event {
	switch t.Kind {
	case TargetMode:
		return quiz.SelectMode(t.Mode)
	case TargetNote:
		return quiz.SelectNote(t.Note)
	case TargetRepeat:
		return quiz.RepeatRequested()
	case TargetConfirm:
		return quiz.ConfirmResult()
	}
	return quiz.Event{}
}

// Region is a rectangle of terminal cells bound to a target.
type Region struct {
	Target        Target
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// HitMap holds the clickable regions of the last rendered frame.
type HitMap struct {
	regions []Region
}

// Reset clears all regions before a frame is rendered.
func (h *HitMap) Reset() {
	h.regions = h.regions[:0]
}

// Add registers a region.
func (h *HitMap) Add(r Region) {
	h.regions = append(h.regions, r)
}

// Regions returns the registered regions.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// At returns the target under (x, y). Later regions win on overlap.
func (h *HitMap) At(x, y int) (Target, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Contains(x, y) {
			return h.regions[i].Target, true
		}
	}
	return Target{}, false
}
