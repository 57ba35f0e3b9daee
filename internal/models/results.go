package models

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jfosburgh/typing-ninja/internal/render"
	"github.com/jfosburgh/typing-ninja/internal/scores"
	"github.com/jfosburgh/typing-ninja/internal/stats"
)

const (
	resultButtonWidth = 14
	resultButtonGap   = 2
	recentScores      = 5
)

// ResultsScreen scores a finished round. The score is saved once, when the
// screen is created.
type ResultsScreen struct {
	env *Env

	Round     stats.Round
	Result    stats.Result
	Saved     scores.Record
	HighScore float64
	History   []scores.Record

	title heading
	mouse pointer
}

func NewResultsScreen(env *Env, round stats.Round) *ResultsScreen {
	s := &ResultsScreen{
		env:    env,
		Round:  round,
		Result: round.Result(),
		title:  newHeading(env.Assets.Face, "RESULTS", Blue),
	}

	rec, err := env.Scores.Save(s.Result.WPM, s.Result.Accuracy)
	if err != nil {
		env.Log.Warn().Err(err).Str("path", env.Scores.Path()).Msg("could not save score")
	}
	s.Saved = rec
	s.HighScore = env.Scores.HighScore()
	s.History = env.Scores.History()
	return s
}

type resultsLayout struct {
	title      []string
	titleY     int
	wpmY       int
	accuracyY  int
	highScoreY int
	restart    render.Rect
	quit       render.Rect
	tableY     int
	tableRows  int
}

func (s *ResultsScreen) layout(f Frame) resultsLayout {
	// gap, wpm, accuracy, high score, gap, buttons
	below := 1 + 1 + 1 + 1 + 1 + buttonHeight
	title := s.title.rows(f.Width, f.Height-below-2)

	// Recent scores only get whatever room is left: header, rule, rows.
	spare := f.Height - len(title) - below - 2
	rows := min(recentScores, len(s.History), spare-3)
	if rows < 1 {
		rows = 0
	}
	total := len(title) + below
	if rows > 0 {
		total += 1 + 2 + rows
	}

	l := resultsLayout{title: title, tableRows: rows}
	y := max(0, (f.Height-total)/2)
	l.titleY = y
	y += len(title) + 1
	l.wpmY = y
	l.accuracyY = y + 1
	l.highScoreY = y + 2
	y += 4

	x := (f.Width - 2*resultButtonWidth - resultButtonGap) / 2
	l.restart = render.Rect{X: x, Y: y, W: resultButtonWidth, H: buttonHeight}
	l.quit = render.Rect{X: x + resultButtonWidth + resultButtonGap, Y: y, W: resultButtonWidth, H: buttonHeight}
	l.tableY = y + buttonHeight + 1
	return l
}

func (s *ResultsScreen) Handle(f Frame, msg tea.Msg) Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Close), key.Matches(msg, keys.Quit):
			return quit()
		case key.Matches(msg, keys.Restart):
			return restart()
		}
	case tea.MouseMsg:
		if !s.mouse.track(msg) {
			return stay()
		}
		l := s.layout(f)
		switch {
		case l.restart.Contains(msg.X, msg.Y):
			return restart()
		case l.quit.Contains(msg.X, msg.Y):
			return quit()
		}
	}
	return stay()
}

func (s *ResultsScreen) recentTable(rows int) table.Model {
	recent := lo.Reverse(append([]scores.Record(nil), s.History...))
	recent = recent[:min(rows, len(recent))]

	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 19},
			{Title: "WPM", Width: 6},
			{Title: "Accuracy", Width: 9},
		}),
		table.WithRows(lo.Map(recent, func(r scores.Record, _ int) table.Row {
			return table.Row{r.Date, fmt.Sprintf("%.1f", r.WPM), fmt.Sprintf("%.1f%%", r.Accuracy)}
		})),
		table.WithHeight(rows+2),
		table.WithStyles(styles),
	)
}

func (s *ResultsScreen) Draw(f Frame, c *render.Canvas) {
	l := s.layout(f)
	cx := c.Width() / 2

	s.title.draw(c, l.title, l.titleY)
	c.Text(textStyle(Yellow).Render(fmt.Sprintf("WPM: %.1f", s.Result.WPM)), cx, l.wpmY, render.AlignCenter)
	c.Text(textStyle(Green).Render(fmt.Sprintf("Accuracy: %.1f%%", s.Result.Accuracy)), cx, l.accuracyY, render.AlignCenter)
	c.Text(textStyle(White).Render(fmt.Sprintf("High Score: %.1f WPM", s.HighScore)), cx, l.highScoreY, render.AlignCenter)

	c.Button(l.restart, "Restart", buttonStyle(s.mouse.pick(l.restart, Gray, Green)))
	c.Button(l.quit, "Quit", buttonStyle(s.mouse.pick(l.quit, Gray, Red)))

	if l.tableRows > 0 {
		c.Text(s.recentTable(l.tableRows).View(), cx, l.tableY, render.AlignCenter)
	}

	drawHelp(c, keys.Restart, keys.Quit, keys.Close)
}
