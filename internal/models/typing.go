package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jfosburgh/typing-ninja/internal/render"
	"github.com/jfosburgh/typing-ninja/internal/stats"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

type KeystrokeStatus uint

const (
	CORRECT KeystrokeStatus = iota
	INCORRECT
)

// TypingRound presents words one at a time until RoundLength attempts have
// been submitted. The round never times out; the clock only feeds wpm.
type TypingRound struct {
	env *Env
	log zerolog.Logger

	ID    string
	Level words.Difficulty

	Target string
	Input  []rune

	CorrectCount int
	Total        int

	StartTime time.Time
}

func NewTypingRound(env *Env, level words.Difficulty, start time.Time) *TypingRound {
	id := env.NewID()
	r := &TypingRound{
		env:       env,
		log:       env.Log.With().Str("round", id).Str("difficulty", string(level)).Logger(),
		ID:        id,
		Level:     level,
		StartTime: start,
	}
	r.NewTarget()
	r.log.Info().Msg("round started")
	return r
}

func (r *TypingRound) NewTarget() {
	r.Target = r.env.Words.Get(r.Level)
	r.Input = r.Input[:0]
}

func (r *TypingRound) Remaining() int {
	return r.env.RoundLength - r.Total
}

// Type appends the printable characters of s to the input.
func (r *TypingRound) Type(s string) {
	for _, ch := range s {
		if unicode.IsPrint(ch) {
			r.Input = append(r.Input, ch)
		}
	}
}

func (r *TypingRound) Backspace() {
	if len(r.Input) > 0 {
		r.Input = r.Input[:len(r.Input)-1]
	}
}

// Submit judges the input against the target by exact match. It returns a
// FINISH outcome once the round's attempts are used up.
func (r *TypingRound) Submit(now time.Time) Outcome {
	r.Total++
	typed := string(r.Input)
	hit := typed == r.Target
	if hit {
		r.CorrectCount++
		r.env.Assets.Correct.Play()
	} else {
		r.env.Assets.Blip.Play()
	}

	r.log.Debug().
		Str("target", r.Target).
		Str("typed", typed).
		Bool("correct", hit).
		Int("attempt", r.Total).
		Msg("word submitted")

	if r.Total >= r.env.RoundLength {
		round := stats.Round{
			Correct: r.CorrectCount,
			Total:   r.Total,
			Start:   r.StartTime,
			End:     now,
		}
		r.log.Info().
			Int("correct", round.Correct).
			Int("total", round.Total).
			Dur("elapsed", round.Elapsed()).
			Msg("round finished")
		return finish(round)
	}

	r.NewTarget()
	return stay()
}

// Statuses colours each typed character by position only. It is independent
// of the exact-match judgement made on submit.
func (r *TypingRound) Statuses() []KeystrokeStatus {
	target := []rune(r.Target)
	statuses := make([]KeystrokeStatus, len(r.Input))
	for i, ch := range r.Input {
		if i < len(target) && ch == target[i] {
			statuses[i] = CORRECT
		} else {
			statuses[i] = INCORRECT
		}
	}
	return statuses
}

func (r *TypingRound) Handle(f Frame, msg tea.Msg) Outcome {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return stay()
	}

	switch {
	case key.Matches(km, keys.Close):
		r.log.Info().Int("total", r.Total).Msg("round abandoned")
		return quit()
	case key.Matches(km, keys.Submit):
		return r.Submit(f.Now)
	case key.Matches(km, keys.Backspace):
		r.Backspace()
	case km.Type == tea.KeySpace:
		r.Type(" ")
	case km.Type == tea.KeyRunes && !km.Alt:
		r.Type(string(km.Runes))
	}
	return stay()
}

func cursorVisible(now time.Time) bool {
	return (now.UnixMilli()/500)%2 == 0
}

func (r *TypingRound) Draw(f Frame, c *render.Canvas) {
	small := textStyle(White)
	c.Text(small.Render(fmt.Sprintf("Correct: %d/%d", r.CorrectCount, r.Total)), 2, 1, render.AlignLeft)
	c.Text(small.Render(fmt.Sprintf("Words Left: %d", r.Remaining())), c.Width()-2, 1, render.AlignRight)

	mid := c.Height() / 2
	target := c.Text(textStyle(White).Bold(true).Render(r.Target), c.Width()/2, mid-2, render.AlignCenter)

	var typed strings.Builder
	for i, status := range r.Statuses() {
		color := Correct
		if status == INCORRECT {
			color = Incorrect
		}
		typed.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(r.Input[i])))
	}
	if cursorVisible(f.Now) {
		typed.WriteString(textStyle(White).Render("|"))
	}
	c.Put(target.X, mid+1, typed.String())

	drawHelp(c, keys.Submit, keys.Backspace, keys.Close)
}
