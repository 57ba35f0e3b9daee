package models

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jfosburgh/typing-ninja/internal/render"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

const (
	difficultyButtonWidth = 16
	difficultyButtonGap   = 2
	startButtonWidth      = 25
	buttonHeight          = 3
)

var difficultyColors = map[words.Difficulty]lipgloss.Color{
	words.Easy:   Green,
	words.Medium: Blue,
	words.Hard:   Red,
}

// StartScreen lets the player pick a difficulty. Picking only changes the
// selection; the round begins from the Start Game button.
type StartScreen struct {
	env *Env

	Selected  words.Difficulty
	HighScore float64

	title heading
	mouse pointer
}

func NewStartScreen(env *Env) *StartScreen {
	return &StartScreen{
		env:       env,
		Selected:  words.Medium,
		HighScore: env.Scores.HighScore(),
		title:     newHeading(env.Assets.Face, "TYPING NINJA", Blue),
	}
}

type startLayout struct {
	title        []string
	titleY       int
	highScoreY   int
	promptY      int
	difficulties map[words.Difficulty]render.Rect
	start        render.Rect
}

func (s *StartScreen) layout(f Frame) startLayout {
	// gap, high score, gap, prompt, gap, buttons, gap, start button
	below := 1 + 1 + 1 + 1 + 1 + buttonHeight + 1 + buttonHeight
	title := s.title.rows(f.Width, f.Height-below-2)
	total := len(title) + below

	l := startLayout{title: title, difficulties: map[words.Difficulty]render.Rect{}}
	y := max(0, (f.Height-total)/2)
	l.titleY = y
	y += len(title) + 1
	l.highScoreY = y
	y += 2
	l.promptY = y
	y += 2

	rowWidth := len(words.Difficulties)*difficultyButtonWidth + (len(words.Difficulties)-1)*difficultyButtonGap
	x := (f.Width - rowWidth) / 2
	for i, d := range words.Difficulties {
		l.difficulties[d] = render.Rect{
			X: x + i*(difficultyButtonWidth+difficultyButtonGap),
			Y: y,
			W: difficultyButtonWidth,
			H: buttonHeight,
		}
	}
	y += buttonHeight + 1
	l.start = render.Rect{X: (f.Width - startButtonWidth) / 2, Y: y, W: startButtonWidth, H: buttonHeight}
	return l
}

func (s *StartScreen) cycle(step int) {
	i := lo.IndexOf(words.Difficulties, s.Selected)
	n := len(words.Difficulties)
	s.Selected = words.Difficulties[((i+step)%n+n)%n]
}

func (s *StartScreen) Handle(f Frame, msg tea.Msg) Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Close):
			return exit()
		case key.Matches(msg, keys.Submit):
			return begin(s.Selected)
		case key.Matches(msg, keys.Prev):
			s.cycle(-1)
		case key.Matches(msg, keys.Next):
			s.cycle(1)
		case key.Matches(msg, keys.Easy):
			s.Selected = words.Easy
		case key.Matches(msg, keys.Medium):
			s.Selected = words.Medium
		case key.Matches(msg, keys.Hard):
			s.Selected = words.Hard
		}
	case tea.MouseMsg:
		if !s.mouse.track(msg) {
			return stay()
		}
		l := s.layout(f)
		for d, r := range l.difficulties {
			if r.Contains(msg.X, msg.Y) {
				s.Selected = d
				return stay()
			}
		}
		if l.start.Contains(msg.X, msg.Y) {
			return begin(s.Selected)
		}
	}
	return stay()
}

func (s *StartScreen) Draw(f Frame, c *render.Canvas) {
	l := s.layout(f)

	s.title.draw(c, l.title, l.titleY)
	c.Text(textStyle(Yellow).Render(fmt.Sprintf("High Score: %.1f WPM", s.HighScore)), c.Width()/2, l.highScoreY, render.AlignCenter)
	c.Text(textStyle(White).Render("Select Difficulty"), c.Width()/2, l.promptY, render.AlignCenter)

	for _, d := range words.Difficulties {
		r := l.difficulties[d]
		color := s.mouse.pick(r, Gray, difficultyColors[d])
		if d == s.Selected {
			color = difficultyColors[d]
		}
		c.Button(r, d.Title(), buttonStyle(color))
	}
	c.Button(l.start, "Start Game", buttonStyle(s.mouse.pick(l.start, Yellow, Correct)))

	drawHelp(c, keys.Prev, keys.Submit, keys.Close)
}
