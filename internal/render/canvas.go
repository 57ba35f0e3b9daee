// Package render draws screens onto a fixed-size grid of terminal cells.
//
// A Canvas works like a window surface: callers blit text and buttons at
// cell coordinates and everything not covered shows the Backdrop underneath.
package render

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

type segment struct {
	x, w int
	s    string
}

type Canvas struct {
	width, height int
	bg            Backdrop
	rows          [][]segment
}

func NewCanvas(width, height int, bg Backdrop) *Canvas {
	if bg == nil {
		bg = Blank{}
	}
	return &Canvas{
		width:  max(0, width),
		height: max(0, height),
		bg:     bg,
		rows:   make([][]segment, max(0, height)),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Put draws s with its top-left corner at (x, y). Multi-line strings occupy
// consecutive rows. Anything outside the canvas is clipped, and a later Put
// replaces earlier segments it overlaps.
func (c *Canvas) Put(x, y int, s string) {
	for i, line := range strings.Split(s, "\n") {
		c.putLine(x, y+i, line)
	}
}

func (c *Canvas) putLine(x, y int, line string) {
	if y < 0 || y >= c.height || x >= c.width {
		return
	}
	w := lipgloss.Width(line)
	if x < 0 {
		if -x >= w {
			return
		}
		line = ansi.TruncateLeft(line, -x, "")
		w += x
		x = 0
	}
	if x+w > c.width {
		line = ansi.Truncate(line, c.width-x, "")
		w = c.width - x
	}
	if w <= 0 {
		return
	}

	kept := c.rows[y][:0]
	for _, seg := range c.rows[y] {
		if seg.x+seg.w <= x || seg.x >= x+w {
			kept = append(kept, seg)
		}
	}
	c.rows[y] = append(kept, segment{x: x, w: w, s: line})
}

// Text draws s anchored at x according to align and returns the cells it
// covers.
func (c *Canvas) Text(s string, x, y int, align Align) Rect {
	w, h := lipgloss.Size(s)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	c.Put(x, y, s)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Button fills r with style and centres label on its middle row.
func (c *Canvas) Button(r Rect, label string, style lipgloss.Style) {
	blank := style.Width(r.W).Render("")
	mid := r.Y + r.H/2
	for y := r.Y; y < r.Y+r.H; y++ {
		if y == mid {
			c.Put(r.X, y, style.Width(r.W).Align(lipgloss.Center).Render(label))
			continue
		}
		c.Put(r.X, y, blank)
	}
}

func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y, segs := range c.rows {
		slices.SortFunc(segs, func(a, b segment) int { return cmp.Compare(a.x, b.x) })

		var b strings.Builder
		cur := 0
		for _, seg := range segs {
			if seg.x > cur {
				b.WriteString(c.bg.Cells(y, cur, seg.x))
			}
			b.WriteString(seg.s)
			cur = seg.x + seg.w
		}
		if cur < c.width {
			b.WriteString(c.bg.Cells(y, cur, c.width))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
