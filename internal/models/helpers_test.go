package models

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jfosburgh/typing-ninja/internal/assets"
	"github.com/jfosburgh/typing-ninja/internal/render"
	"github.com/jfosburgh/typing-ninja/internal/scores"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

type testEnv struct {
	*Env
	clock   *fakeClock
	correct *countingSound
	blip    *countingSound
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)}
	correct, blip := &countingSound{}, &countingSound{}
	env := &Env{
		Words: words.NewSource(map[words.Difficulty]words.WordList{
			words.Easy:   {"loop", "list", "zip"},
			words.Medium: {"lambda", "filter"},
			words.Hard:   {"recursion"},
		}),
		Scores: scores.New(filepath.Join(t.TempDir(), "scores.json"), scores.WithClock(clock.Now)),
		Assets: &assets.Assets{
			Face:       assets.FallbackFace,
			Background: render.Blank{},
			Correct:    correct,
			Blip:       blip,
		},
		Log:   zerolog.Nop(),
		Now:   clock.Now,
		NewID: func() string { return "test-round" },
	}
	return testEnv{Env: env.withDefaults(), clock: clock, correct: correct, blip: blip}
}

func (e testEnv) frame() Frame {
	return Frame{Width: DefaultWidth, Height: DefaultHeight, Now: e.clock.Now()}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	escape    = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	space     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func click(r render.Rect) tea.MouseMsg {
	x, y := r.Center()
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func draw(f Frame, s Screen) string {
	c := render.NewCanvas(f.Width, f.Height, render.Blank{})
	s.Draw(f, c)
	return c.Render()
}
