package input

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

// KeyMap binds keys to quiz events.
type KeyMap struct {
	Single  key.Binding
	Chord   key.Binding
	Notes   [notes.Count]key.Binding
	Repeat  key.Binding
	Confirm key.Binding
	Help    key.Binding
}

// DefaultKeyMap maps note letters and the digits 1-7 to the note buttons.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Single: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "1 note"),
		),
		Chord: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "2 notes (chord)"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r", "space"),
			key.WithHelp("R", "Repeat"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "t"),
			key.WithHelp("Enter", "Title"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Notes"),
		),
	}
	for _, n := range notes.All() {
		letter := strings.ToLower(n.String())
		digit := strconv.Itoa(int(n) + 1)
		km.Notes[n] = key.NewBinding(
			key.WithKeys(letter, digit),
			key.WithHelp(n.String(), n.String()),
		)
	}
	return km
}

// AnswerHelp summarizes the note bindings as one footer entry.
func (k KeyMap) AnswerHelp() key.Binding {
	var keys []string
	for _, b := range k.Notes {
		keys = append(keys, b.Keys()...)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp("C-B/1-7", "Answer"),
	)
}

// Event translates a key press into the quiz event it means on screen.
func (k KeyMap) Event(screen quiz.Screen, msg tea.KeyPressMsg) (quiz.Event, bool) {
	switch screen {
	case quiz.ScreenTitle:
		switch {
		case key.Matches(msg, k.Single):
			return quiz.SelectMode(quiz.ModeSingleNote), true
		case key.Matches(msg, k.Chord):
			return quiz.SelectMode(quiz.ModeChord), true
		}

	case quiz.ScreenPlaying:
		if key.Matches(msg, k.Repeat) {
			return quiz.RepeatRequested(), true
		}
		for i, b := range k.Notes {
			if key.Matches(msg, b) {
				return quiz.SelectNote(notes.Note(i)), true
			}
		}

	case quiz.ScreenResult:
		if key.Matches(msg, k.Confirm) {
			return quiz.ConfirmResult(), true
		}
	}
	return quiz.Event{}, false
}
