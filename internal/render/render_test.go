package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font/basicfont"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	if x, y := r.Center(); x != 4 || y != 4 {
		t.Errorf("Center() = %d,%d", x, y)
	}
}

func TestCanvasRenderBlank(t *testing.T) {
	c := NewCanvas(5, 3, nil)
	got := c.Render()
	want := "     \n     \n     "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasPutAndAlign(t *testing.T) {
	c := NewCanvas(10, 3, nil)
	c.Text("ab", 0, 0, AlignLeft)
	r := c.Text("xyz", 5, 1, AlignCenter)
	c.Text("end", 10, 2, AlignRight)

	if r.X != 4 || r.W != 3 {
		t.Errorf("centered rect = %+v", r)
	}
	lines := strings.Split(c.Render(), "\n")
	want := []string{
		"ab        ",
		"    xyz   ",
		"       end",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCanvasClipsAndOverwrites(t *testing.T) {
	c := NewCanvas(6, 2, nil)
	c.Put(4, 0, "abcdef")
	c.Put(-2, 1, "uvwxyz")
	c.Put(0, 5, "never")
	c.Put(1, 1, "Q")

	lines := strings.Split(c.Render(), "\n")
	if lines[0] != "    ab" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != " Q    " {
		t.Errorf("line 1 = %q", lines[1])
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
}

func TestCanvasOrdersSegments(t *testing.T) {
	c := NewCanvas(9, 1, nil)
	c.Put(6, 0, "c")
	c.Put(0, 0, "a")
	c.Put(3, 0, "b")
	if got := c.Render(); got != "a  b  c  " {
		t.Errorf("Render() = %q", got)
	}
}

func TestCanvasMultiline(t *testing.T) {
	c := NewCanvas(4, 3, nil)
	c.Put(1, 1, "ab\ncd")
	if got := c.Render(); got != "    \n ab \n cd " {
		t.Errorf("Render() = %q", got)
	}
}

func TestCanvasButton(t *testing.T) {
	c := NewCanvas(12, 3, nil)
	c.Button(Rect{X: 1, Y: 0, W: 10, H: 3}, "Go", lipgloss.NewStyle())
	lines := strings.Split(c.Render(), "\n")
	if lines[1] != "     Go     " {
		t.Errorf("label row = %q", lines[1])
	}
	if lines[0] != strings.Repeat(" ", 12) {
		t.Errorf("top row = %q", lines[0])
	}
}

type stripes struct{}

func (stripes) Cells(y, x0, x1 int) string {
	return strings.Repeat(string(rune('0'+y)), x1-x0)
}

func TestCanvasUsesBackdrop(t *testing.T) {
	c := NewCanvas(5, 2, stripes{})
	c.Put(2, 1, "x")
	if got := c.Render(); got != "00000\n11x11" {
		t.Errorf("Render() = %q", got)
	}
}

func TestSolidFillWidth(t *testing.T) {
	f := SolidFill(lipgloss.Color("#000000"))
	if w := lipgloss.Width(f.Cells(0, 3, 10)); w != 7 {
		t.Errorf("fill width = %d, want 7", w)
	}
	if f.Cells(0, 4, 4) != "" {
		t.Error("empty range should render nothing")
	}
}

func TestPictureFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	p := NewPicture(src)
	p.Fit(8, 4)
	if w, h := p.Size(); w != 8 || h != 4 {
		t.Errorf("Size() = %d,%d", w, h)
	}
	for y := range 4 {
		if w := lipgloss.Width(p.Cells(y, 0, 8)); w != 8 {
			t.Errorf("row %d width = %d", y, w)
		}
	}
	if w := lipgloss.Width(p.Cells(9, 0, 3)); w != 3 {
		t.Errorf("out-of-range row width = %d, want 3", w)
	}
	if !strings.Contains(p.Cells(0, 0, 1), "▀") {
		t.Errorf("expected half block cell, got %q", p.Cells(0, 0, 1))
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 255, G: 16, B: 1, A: 255}); got != "#ff1001" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestBanner(t *testing.T) {
	rows := Banner(basicfont.Face7x13, "HI")
	if len(rows) == 0 {
		t.Fatal("Banner returned no rows")
	}
	if len(rows) > 7 {
		t.Errorf("Banner has %d rows, want at most 7", len(rows))
	}
	width := lipgloss.Width(rows[0])
	if width != 14 {
		t.Errorf("Banner width = %d, want 14", width)
	}
	inked := false
	for _, r := range rows {
		if lipgloss.Width(r) != width {
			t.Errorf("uneven row width %d", lipgloss.Width(r))
		}
		if strings.ContainsAny(r, "█▀▄") {
			inked = true
		}
	}
	if !inked {
		t.Error("Banner drew nothing")
	}
	if strings.TrimSpace(rows[0]) == "" || strings.TrimSpace(rows[len(rows)-1]) == "" {
		t.Error("blank edge rows should be trimmed")
	}
}
