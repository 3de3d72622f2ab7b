package quiz

// Step runs one tick of the state machine. Running timers are advanced
// first; a tick on which a timer is running consumes no input. Otherwise
// events are applied in order. The input state is not modified.
func Step(st State, events []Event, gen Generator) (State, []Command) {
	st = st.clone()
	var cmds []Command

	if st.Screen == ScreenPlaying && st.Session != nil {
		r := &st.Session.Round
		switch {
		case r.FeedbackDelay > 0:
			r.FeedbackDelay--
			if r.FeedbackDelay == 0 {
				cmds = advance(&st, cmds)
			}
			return st, cmds
		case r.StartDelay > 0:
			r.StartDelay--
			if r.StartDelay == 0 {
				if q, ok := st.Session.CurrentQuestion(); ok {
					cmds = append(cmds, playNotes(q))
				}
			}
			return st, cmds
		}
	}

	for _, ev := range events {
		st, cmds = apply(st, ev, gen, cmds)
	}
	return st, cmds
}

// apply handles a single event. Events that are not valid for the current
// screen or phase are dropped.
func apply(st State, ev Event, gen Generator, cmds []Command) (State, []Command) {
	switch st.Screen {
	case ScreenTitle:
		if ev.Kind == EventSelectMode && ev.Mode.Valid() {
			st.Session = NewSession(ev.Mode, gen)
			st.Screen = ScreenPlaying
		}

	case ScreenPlaying:
		s := st.Session
		if s == nil || s.Round.Locked() {
			return st, cmds
		}
		switch ev.Kind {
		case EventSelectNote:
			selectNote(s, ev)
		case EventRepeat:
			if q, ok := s.CurrentQuestion(); ok {
				cmds = append(cmds, playNotes(q))
			}
		}

	case ScreenResult:
		if ev.Kind == EventConfirmResult {
			st.Screen = ScreenTitle
			st.Session = nil
		}
	}
	return st, cmds
}

func selectNote(s *Session, ev Event) {
	r := &s.Round
	required := s.Mode.NoteCount()
	if !ev.Note.Valid() || r.Has(ev.Note) || r.Complete(required) {
		return
	}
	r.Answers = append(r.Answers, ev.Note)
	if r.Complete(required) {
		evaluate(s)
	}
}

// advance moves to the next round once feedback has elapsed. Later rounds
// play straight away; only the first round waits for the ready delay.
func advance(st *State, cmds []Command) []Command {
	s := st.Session
	s.Index++
	if s.Done() {
		st.Screen = ScreenResult
		return cmds
	}
	s.Round = RoundState{}
	if q, ok := s.CurrentQuestion(); ok {
		cmds = append(cmds, playNotes(q))
	}
	return cmds
}
