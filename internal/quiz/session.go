package quiz

// Screen is the top-level state of the quiz.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenResult:
		return "result"
	}
	return "unknown"
}

// Session is one run of TotalQuestions rounds in a single mode.
type Session struct {
	Mode      Mode
	Questions []Question

	// Index is the current round, 0-based. It reaches len(Questions)
	// once the last round has been answered.
	Index int

	Score Score
	Round RoundState
}

// NewSession builds a session with freshly generated questions. The first
// round waits StartDelayTicks before playing.
func NewSession(mode Mode, gen Generator) *Session {
	return &Session{
		Mode:      mode,
		Questions: gen.Generate(mode),
		Round:     RoundState{StartDelay: StartDelayTicks},
	}
}

// CurrentQuestion returns the question for the active round.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil, false
	}
	return s.Questions[s.Index], true
}

// Done reports whether every round has been played.
func (s *Session) Done() bool {
	return s.Index >= len(s.Questions)
}

// Questions are shared between clones; they are immutable.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Round = s.Round.clone()
	return &c
}

// State is the complete quiz state.
type State struct {
	Screen  Screen
	Session *Session
}

// Phase returns the round phase, or PhaseNone outside of play.
func (st State) Phase() Phase {
	if st.Screen != ScreenPlaying || st.Session == nil {
		return PhaseNone
	}
	return st.Session.Round.Phase()
}

func (st State) clone() State {
	st.Session = st.Session.clone()
	return st
}
