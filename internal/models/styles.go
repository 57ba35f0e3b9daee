package models

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font"

	"github.com/jfosburgh/typing-ninja/internal/render"
)

var (
	White  = lipgloss.Color("#ffffff")
	Black  = lipgloss.Color("#000000")
	Blue   = lipgloss.Color("#0096ff")
	Green  = lipgloss.Color("#00ff00")
	Red    = lipgloss.Color("#ff3232")
	Gray   = lipgloss.Color("#b4b4b4")
	Yellow = lipgloss.Color("#ffff00")

	Correct   = lipgloss.Color("#64ff64")
	Incorrect = lipgloss.Color("#ff6464")
)

type keyMap struct {
	Close     key.Binding
	Submit    key.Binding
	Backspace key.Binding

	Prev   key.Binding
	Next   key.Binding
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding

	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Close:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "close")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),

	Prev:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←/→", "difficulty")),
	Next:   key.NewBinding(key.WithKeys("right", "tab")),
	Easy:   key.NewBinding(key.WithKeys("1", "e")),
	Medium: key.NewBinding(key.WithKeys("2", "m")),
	Hard:   key.NewBinding(key.WithKeys("3", "h")),

	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func buttonStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(Black).Bold(true)
}

func textStyle(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg)
}

// pointer remembers where the mouse was last seen so buttons can show a
// hover colour.
type pointer struct {
	x, y int
	seen bool
}

// track records the position and reports whether msg was a left click.
func (p *pointer) track(msg tea.MouseMsg) bool {
	p.x, p.y, p.seen = msg.X, msg.Y, true
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (p pointer) over(r render.Rect) bool {
	return p.seen && r.Contains(p.x, p.y)
}

func (p pointer) pick(r render.Rect, normal, hover lipgloss.Color) lipgloss.Color {
	if p.over(r) {
		return hover
	}
	return normal
}

// heading is a screen title drawn with the display font, or as plain bold
// text when the terminal is too small for the banner.
type heading struct {
	text   string
	banner []string
	color  lipgloss.Color
}

func newHeading(face font.Face, text string, color lipgloss.Color) heading {
	return heading{text: text, banner: render.Banner(face, text), color: color}
}

// rows returns the lines to draw given the room available.
func (h heading) rows(width, maxRows int) []string {
	if len(h.banner) > 0 && len(h.banner) <= maxRows && lipgloss.Width(h.banner[0]) <= width-2 {
		return h.banner
	}
	return []string{h.text}
}

func (h heading) draw(c *render.Canvas, rows []string, y int) {
	style := textStyle(h.color).Bold(true)
	for i, line := range rows {
		c.Text(style.Render(line), c.Width()/2, y+i, render.AlignCenter)
	}
}

func drawHelp(c *render.Canvas, bindings ...key.Binding) {
	h := help.New()
	c.Text(h.ShortHelpView(bindings), c.Width()/2, c.Height()-1, render.AlignCenter)
}
