package render

import "github.com/lixenwraith/scrollstack/palette"

// Attr is a cell text attribute bitmask
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim

	AttrNone Attr = 0
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    palette.RGB
	Bg    palette.RGB
	Attrs Attr
}

// Rect is a cell-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inset shrinks r by n cells on every side
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}
