package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfosburgh/typing-ninja/internal/render"
)

// Frame describes the frame being processed.
type Frame struct {
	Width  int
	Height int
	Now    time.Time
}

// Screen is one state of the game: start, typing round or results.
type Screen interface {
	// Handle applies a single input event.
	Handle(f Frame, msg tea.Msg) Outcome
	Draw(f Frame, c *render.Canvas)
}

type FrameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Game drives the active screen at a fixed frame rate. Input that arrives
// between frames is queued and applied, in arrival order, when the next frame
// starts.
type Game struct {
	env *Env

	Screen  Screen
	Frame   Frame
	Pending []tea.Msg

	Quitting bool
}

func NewGame(env *Env) Game {
	env = env.withDefaults()
	return Game{
		env:    env,
		Screen: NewStartScreen(env),
		Frame:  Frame{Width: DefaultWidth, Height: DefaultHeight, Now: env.Now()},
	}
}

func (g Game) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Typing Ninja"), frameCmd(g.env.FPS))
}

func (g Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return g.step()
	case tea.WindowSizeMsg:
		g.Frame.Width = msg.Width
		g.Frame.Height = msg.Height
		g.env.Assets.Resize(msg.Width, msg.Height)
	case tea.KeyMsg, tea.MouseMsg:
		g.Pending = append(g.Pending, msg)
	}
	return g, nil
}

// step runs one frame: drain queued input into the screen, then schedule the
// next frame. Input queued behind a screen change is dropped, since it was
// aimed at the screen that just closed.
func (g Game) step() (tea.Model, tea.Cmd) {
	g.Frame.Now = g.env.Now()

	pending := g.Pending
	g.Pending = nil
	for _, msg := range pending {
		out := g.Screen.Handle(g.Frame, msg)
		if out.Kind == NONE {
			continue
		}
		if g.apply(out) {
			return g, tea.Quit
		}
		break
	}
	return g, frameCmd(g.env.FPS)
}

// apply switches screens for out and reports whether the program should end.
func (g *Game) apply(out Outcome) bool {
	log := g.env.Log.With().Stringer("outcome", out.Kind).Logger()

	switch out.Kind {
	case BEGIN:
		g.Screen = NewTypingRound(g.env, out.Difficulty, g.Frame.Now)
	case FINISH:
		g.Screen = NewResultsScreen(g.env, out.Round)
	case RESTART:
		log.Debug().Msg("back to start screen")
		g.Screen = NewStartScreen(g.env)
	case QUIT, EXIT:
		log.Info().Msg("quitting")
		g.Quitting = true
		return true
	}
	return false
}

func (g Game) View() string {
	if g.Quitting {
		return ""
	}
	c := render.NewCanvas(g.Frame.Width, g.Frame.Height, g.env.Assets.Background)
	g.Screen.Draw(g.Frame, c)
	return c.Render()
}
