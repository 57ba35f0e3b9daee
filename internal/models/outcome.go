package models

import (
	"github.com/jfosburgh/typing-ninja/internal/stats"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

type OutcomeKind uint

const (
	// NONE keeps the current screen.
	NONE OutcomeKind = iota
	// BEGIN starts a round at Outcome.Difficulty.
	BEGIN
	// FINISH shows the results of Outcome.Round.
	FINISH
	RESTART
	QUIT
	// EXIT is a close request from the start screen: terminate right away.
	EXIT
)

func (k OutcomeKind) String() string {
	switch k {
	case NONE:
		return "none"
	case BEGIN:
		return "begin"
	case FINISH:
		return "finish"
	case RESTART:
		return "restart"
	case QUIT:
		return "quit"
	case EXIT:
		return "exit"
	}
	return "unknown"
}

// Outcome is what a screen reports after handling an input event.
type Outcome struct {
	Kind       OutcomeKind
	Difficulty words.Difficulty
	Round      stats.Round
}

func stay() Outcome { return Outcome{Kind: NONE} }

func begin(d words.Difficulty) Outcome { return Outcome{Kind: BEGIN, Difficulty: d} }

func finish(r stats.Round) Outcome { return Outcome{Kind: FINISH, Round: r} }

func restart() Outcome { return Outcome{Kind: RESTART} }

func quit() Outcome { return Outcome{Kind: QUIT} }

func exit() Outcome { return Outcome{Kind: EXIT} }
