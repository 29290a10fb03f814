// Package render composites stack state into a terminal cell buffer and flushes
// it to a tcell screen.
package render

import (
	"math"
	"slices"

	"github.com/lixenwraith/scrollstack/palette"
	"github.com/lixenwraith/scrollstack/timeline"
)

// Layout holds the viewport-relative card geometry
type Layout struct {
	CardHeight  float64 // fraction of viewport height
	CardWidth   float64 // fraction of viewport width
	MaxWidth    int     // cells, 0 for unbounded
	LargeOffset float64 // item OffsetY that maps to one full viewport height
}

// DefaultLayout mirrors a 60vh card in a centered column
func DefaultLayout() Layout {
	return Layout{
		CardHeight:  0.6,
		CardWidth:   0.8,
		MaxWidth:    100,
		LargeOffset: timeline.DefaultLargeOffset,
	}
}

// Scene is everything painted in one frame
type Scene struct {
	Title  string
	Global timeline.GlobalState
	Items  []timeline.ItemState
	Cards  []Card
	Status string
}

// Painter paints scenes into a buffer
type Painter struct {
	buf    *Buffer
	layout Layout
	order  []int
}

// NewPainter creates a painter over buf
func NewPainter(buf *Buffer, layout Layout) *Painter {
	return &Painter{buf: buf, layout: layout}
}

// Buffer returns the target buffer
func (p *Painter) Buffer() *Buffer { return p.buf }

// Paint composites s: background, title, cards by z-order, status line
func (p *Painter) Paint(s Scene) {
	w, h := p.buf.Size()
	bg := s.Global.Background
	p.buf.Clear(bg)
	if w == 0 || h == 0 {
		return
	}

	p.paintTitle(s, w, h)

	n := min(len(s.Items), len(s.Cards))
	p.order = p.order[:0]
	for i := 0; i < n; i++ {
		p.order = append(p.order, i)
	}
	slices.SortStableFunc(p.order, func(a, b int) int {
		return s.Items[a].ZOrder - s.Items[b].ZOrder
	})
	for _, i := range p.order {
		p.paintCard(s.Cards[i], s.Items[i], w, h)
	}

	if s.Status != "" {
		fg := bg.Blend(s.Global.Title, 0.6)
		p.buf.Text(1, h-1, w-1, s.Status, fg, AttrDim)
	}
}

func (p *Painter) paintTitle(s Scene, w, h int) {
	if s.Title == "" {
		return
	}
	fg := s.Global.Background.Blend(s.Global.Title, s.Global.TitleOpacity)
	text := spaced(s.Title, w-2)
	x := max((w-len([]rune(text)))/2, 0)
	p.buf.Text(x, h/2, w, text, fg, AttrBold)
}

// CardRect returns the cell rectangle of an item, scaled around the viewport center
func (l Layout) CardRect(w, h int, st timeline.ItemState) Rect {
	cw := float64(w) * l.CardWidth
	if l.MaxWidth > 0 {
		cw = math.Min(cw, float64(l.MaxWidth))
	}
	cw *= st.Scale
	ch := float64(h) * l.CardHeight * st.Scale

	cy := float64(h) / 2
	if l.LargeOffset > 0 {
		cy += st.OffsetY / l.LargeOffset * float64(h)
	}
	cx := float64(w) / 2

	return Rect{
		X: int(math.Round(cx - cw/2)),
		Y: int(math.Round(cy - ch/2)),
		W: int(math.Round(cw)),
		H: int(math.Round(ch)),
	}
}

func (p *Painter) paintCard(c Card, st timeline.ItemState, w, h int) {
	if !(st.Opacity > 0) {
		return
	}
	r := p.layout.CardRect(w, h, st)
	if r.Empty() {
		return
	}
	alpha := math.Min(st.Opacity, 1)

	p.buf.Fill(r, c.Fill, alpha)
	p.paintBorder(r, c, alpha)

	inner := r.Inset(2)
	if inner.Empty() {
		return
	}
	ink := func(x, y int) palette.RGB {
		return p.buf.Get(x, y).Bg.Blend(c.Ink, alpha)
	}

	y := inner.Y
	if y < inner.Y+inner.H {
		end := p.buf.Text(inner.X, y, inner.X+inner.W, c.Title, ink(inner.X, y), AttrBold)
		if c.Subtitle != "" {
			sx := inner.X + inner.W - len([]rune(c.Subtitle))
			if sx > end+1 {
				p.buf.Text(sx, y, inner.X+inner.W, c.Subtitle, ink(sx, y), AttrNone)
			}
		}
		y += 2
	}

	// Badge claims the last row
	rows := inner.Y + inner.H - y
	if c.Badge != "" {
		rows--
	}
	for _, line := range wrap(c.Description, inner.W, rows) {
		p.buf.Text(inner.X, y, inner.X+inner.W, line, ink(inner.X, y), AttrNone)
		y++
	}

	if c.Badge != "" && inner.H > 1 {
		by := inner.Y + inner.H - 1
		bx := max(inner.X+inner.W-len([]rune(c.Badge)), inner.X)
		p.buf.Text(bx, by, inner.X+inner.W, c.Badge, ink(bx, by), AttrDim)
	}
}

func (p *Painter) paintBorder(r Rect, c Card, alpha float64) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W-1, r.Y+r.H-1
	set := func(x, y int, ch rune) {
		fg := p.buf.Get(x, y).Bg.Blend(c.Border, alpha)
		p.buf.SetFgOnly(x, y, ch, fg, AttrNone)
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}
