package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"ballbox/internal/backdrop"
	"ballbox/internal/sim"
)

// World pixels covered by one terminal cell. Cells are about twice as tall
// as they are wide, so the scene keeps its proportions.
const (
	CellW = 8
	CellH = 16
)

const (
	particleRune = '●'
)

// cellCanvas rasterises scene draws onto a tcell screen. shade holds the
// backdrop level per cell so particles can fade into it.
type cellCanvas struct {
	screen tcell.Screen
	cols   int
	rows   int
	shade  []float64
}

var _ sim.Canvas = (*cellCanvas)(nil)

func newCellCanvas(screen tcell.Screen) *cellCanvas {
	return &cellCanvas{screen: screen}
}

func (c *cellCanvas) resize(cols, rows int) {
	c.cols, c.rows = cols, rows
	if n := cols * rows; cap(c.shade) >= n {
		c.shade = c.shade[:n]
	} else {
		c.shade = make([]float64, n)
	}
}

func rgb(col sim.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
}

func grey(level float64) tcell.Color {
	v := int32(math.Round(level * 255))
	return tcell.NewRGBColor(v, v, v)
}

// cellCentre returns the world pixel at the middle of cell (cx, cy).
func cellCentre(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * CellW, (float64(cy) + 0.5) * CellH
}

func (c *cellCanvas) inside(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < c.cols && cy < c.rows
}

func (c *cellCanvas) background(cx, cy int) tcell.Color {
	return grey(c.shade[cy*c.cols+cx])
}

// paintBackdrop fills every cell with the backdrop level at its centre.
func (c *cellCanvas) paintBackdrop(p backdrop.Params) {
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			px, py := cellCentre(cx, cy)
			level := backdrop.Shade(p, px, py)
			c.shade[cy*c.cols+cx] = level
			c.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(grey(level)))
		}
	}
}

// fill paints every cell whose centre satisfies in within the pixel box
// [x0, x1] x [y0, y1].
func (c *cellCanvas) fill(x0, y0, x1, y1 float64, in func(px, py float64) bool) {
	style := tcell.StyleDefault.Background(rgb(sim.Palette.Fill)).Foreground(rgb(sim.Palette.Stroke))
	for cy := int(math.Floor(y0 / CellH)); cy <= int(math.Floor(y1/CellH)); cy++ {
		for cx := int(math.Floor(x0 / CellW)); cx <= int(math.Floor(x1/CellW)); cx++ {
			if !c.inside(cx, cy) {
				continue
			}
			if px, py := cellCentre(cx, cy); in(px, py) {
				c.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
}

func (c *cellCanvas) Circle(x, y, r float64) {
	c.fill(x-r, y-r, x+r, y+r, func(px, py float64) bool {
		return math.Hypot(px-x, py-y) <= r
	})
}

func (c *cellCanvas) Square(x, y, side float64) {
	c.fill(x, y, x+side, y+side, func(px, py float64) bool {
		return px >= x && px <= x+side && py >= y && py <= y+side
	})
}

// Dot draws a particle glyph blended over the cell background by alpha.
func (c *cellCanvas) Dot(x, y, _ float64, col sim.RGB, alpha uint8) {
	cx, cy := int(math.Floor(x/CellW)), int(math.Floor(y/CellH))
	if !c.inside(cx, cy) {
		return
	}
	a := float64(alpha) / 255
	bg := c.shade[cy*c.cols+cx] * 255
	mixc := func(v uint8) int32 {
		return int32(math.Round(float64(v)*a + bg*(1-a)))
	}
	fg := tcell.NewRGBColor(mixc(col.R), mixc(col.G), mixc(col.B))
	c.screen.SetContent(cx, cy, particleRune, nil, tcell.StyleDefault.Foreground(fg).Background(c.background(cx, cy)))
}

// Text writes s on the row whose bottom edge is nearest the baseline y.
func (c *cellCanvas) Text(s string, x, y float64) {
	cx := int(x / CellW)
	cy := max(int(math.Round(y/CellH))-1, 0)
	if cy >= c.rows {
		return
	}
	for _, ch := range s {
		if cx >= c.cols {
			return
		}
		if cx >= 0 {
			style := tcell.StyleDefault.Foreground(rgb(sim.Palette.Text)).Background(c.background(cx, cy))
			c.screen.SetContent(cx, cy, ch, nil, style)
		}
		cx++
	}
}
