package quiz

import (
	"github.com/abhisek/perfectpitch/internal/notes"
)

// seqRand returns scripted values in order, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// fixedGenerator hands out one prepared question list per call.
type fixedGenerator struct {
	lists [][]Question
	calls int
}

func (g *fixedGenerator) Generate(Mode) []Question {
	qs := g.lists[g.calls%len(g.lists)]
	g.calls++
	return qs
}

func singles(ns ...notes.Note) []Question {
	qs := make([]Question, len(ns))
	for i, n := range ns {
		qs[i] = Question{n}
	}
	return qs
}

func chords(pairs ...[2]notes.Note) []Question {
	qs := make([]Question, len(pairs))
	for i, p := range pairs {
		qs[i] = Question{p[0], p[1]}
	}
	return qs
}

// tick runs n ticks without input and collects the commands.
func tick(st State, n int, gen Generator) (State, []Command) {
	var all []Command
	for range n {
		var cmds []Command
		st, cmds = Step(st, nil, gen)
		all = append(all, cmds...)
	}
	return st, all
}

// startSession selects mode and waits out the ready delay.
func startSession(st State, mode Mode, gen Generator) (State, []Command) {
	st, _ = Step(st, []Event{SelectMode(mode)}, gen)
	return tick(st, StartDelayTicks, gen)
}
