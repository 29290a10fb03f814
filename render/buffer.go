package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/scrollstack/palette"
)

// Buffer is a cell compositor flushed to a tcell screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to blank on bg using exponential copy
func (b *Buffer) Clear(bg palette.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Fill blends bg over every cell of r and clears the runes beneath
func (b *Buffer) Fill(r Rect, bg palette.RGB, alpha float64) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, b.height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, b.width); x++ {
			dst := &b.cells[y*b.width+x]
			dst.Bg = dst.Bg.Blend(bg, alpha)
			// Glyphs of lower layers fade with the cover
			dst.Fg = dst.Fg.Blend(dst.Bg, alpha)
			if alpha >= 1 {
				dst.Rune = ' '
				dst.Attrs = AttrNone
			}
		}
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg palette.RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// Text writes s from x, y clipped to [x, limit), returns the column after the last rune
func (b *Buffer) Text(x, y, limit int, s string, fg palette.RGB, attrs Attr) int {
	limit = min(limit, b.width)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.SetFgOnly(x, y, r, fg, attrs)
		// Wide runes occupy a trailing cell that tcell skips
		for i := 1; i < w; i++ {
			b.SetFgOnly(x+i, y, 0, fg, attrs)
		}
		x += w
	}
	return x
}

// ===== OUTPUT =====

// Flush writes the buffer to screen; the caller calls Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}

// ToTcell converts a palette color to a 24-bit tcell color
func ToTcell(c palette.RGB) tcell.Color {
	r, g, bl := c.Bytes()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
