package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// Backdrop supplies whatever sits behind drawn content.
type Backdrop interface {
	// Cells renders the columns [x0, x1) of row y.
	Cells(y, x0, x1 int) string
}

// Blank leaves the terminal's own background showing.
type Blank struct{}

func (Blank) Cells(_, x0, x1 int) string {
	return strings.Repeat(" ", max(0, x1-x0))
}

// Fill paints a solid colour.
type Fill struct {
	style lipgloss.Style
}

func SolidFill(c lipgloss.TerminalColor) Fill {
	return Fill{style: lipgloss.NewStyle().Background(c)}
}

func (f Fill) Cells(_, x0, x1 int) string {
	if x1 <= x0 {
		return ""
	}
	return f.style.Render(strings.Repeat(" ", x1-x0))
}

// Picture shows an image scaled to the canvas, two pixels per cell using the
// upper half block.
type Picture struct {
	src   image.Image
	w, h  int
	cells [][]string
}

func NewPicture(src image.Image) *Picture {
	return &Picture{src: src}
}

// Fit rescales the image to w columns by h rows. It is a no-op when the size
// has not changed.
func (p *Picture) Fit(w, h int) {
	if w == p.w && h == p.h && p.cells != nil {
		return
	}
	p.w, p.h = w, h
	p.cells = nil
	if w <= 0 || h <= 0 {
		return
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h*2))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), p.src, p.src.Bounds(), xdraw.Src, nil)

	p.cells = make([][]string, h)
	for y := range h {
		row := make([]string, w)
		for x := range w {
			top := dst.At(x, y*2)
			bottom := dst.At(x, y*2+1)
			row[x] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Hex(top))).
				Background(lipgloss.Color(Hex(bottom))).
				Render("▀")
		}
		p.cells[y] = row
	}
}

func (p *Picture) Size() (int, int) {
	return p.w, p.h
}

func (p *Picture) Cells(y, x0, x1 int) string {
	if x1 <= x0 {
		return ""
	}
	if y < 0 || y >= len(p.cells) {
		return strings.Repeat(" ", x1-x0)
	}
	row := p.cells[y]
	var b strings.Builder
	for x := x0; x < x1; x++ {
		if x >= 0 && x < len(row) {
			b.WriteString(row[x])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
