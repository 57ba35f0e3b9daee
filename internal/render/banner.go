package render

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Banner rasterises text with face and returns it as rows of half-block
// characters, one row per two pixel lines. Blank rows above and below the
// glyphs are dropped; every returned row has the same width.
func Banner(face font.Face, text string) []string {
	width := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height%2 == 1 {
		height++
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	on := func(x, y int) bool { return img.AlphaAt(x, y).A > 127 }

	var rows []string
	for y := 0; y < height; y += 2 {
		var b strings.Builder
		for x := range width {
			top, bottom := on(x, y), on(x, y+1)
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteByte(' ')
			}
		}
		rows = append(rows, b.String())
	}

	first, last := 0, len(rows)-1
	for first <= last && strings.TrimSpace(rows[first]) == "" {
		first++
	}
	for last >= first && strings.TrimSpace(rows[last]) == "" {
		last--
	}
	return rows[first : last+1]
}
