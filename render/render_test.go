package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scrollstack/palette"
	"github.com/lixenwraith/scrollstack/timeline"
)

var (
	testBg   = palette.RGB{R: 10, G: 20, B: 30}
	testFill = palette.RGB{R: 200, G: 100, B: 50}
	testInk  = palette.RGB{R: 250, G: 250, B: 250}
)

func TestBufferClearAndGet(t *testing.T) {
	b := NewBuffer(7, 3)
	b.Clear(testBg)

	w, h := b.Size()
	assert.Equal(t, 7, w)
	assert.Equal(t, 3, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := b.Get(x, y)
			require.Equal(t, ' ', c.Rune)
			require.Equal(t, testBg, c.Bg)
		}
	}
	assert.Equal(t, Cell{}, b.Get(-1, 0))
	assert.Equal(t, Cell{}, b.Get(7, 0))
}

func TestBufferResizeReuses(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Resize(4, 2)
	assert.Len(t, b.cells, 8)
	assert.Equal(t, 100, cap(b.cells))

	b.Resize(-3, 5)
	w, h := b.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 5, h)
	b.Clear(testBg)
}

func TestBufferFillClipsAndBlends(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(testBg)

	b.Fill(Rect{X: -2, Y: 2, W: 4, H: 10}, testFill, 1)
	assert.Equal(t, testFill, b.Get(0, 3).Bg)
	assert.Equal(t, testFill, b.Get(1, 2).Bg)
	assert.Equal(t, testBg, b.Get(2, 2).Bg)
	assert.Equal(t, testBg, b.Get(0, 1).Bg)

	b.Fill(Rect{X: 2, Y: 0, W: 1, H: 1}, testFill, 0.5)
	assert.Equal(t, testBg.Blend(testFill, 0.5), b.Get(2, 0).Bg)
}

func TestBufferTextClips(t *testing.T) {
	b := NewBuffer(6, 1)
	b.Clear(testBg)

	end := b.Text(2, 0, 5, "hello", testInk, AttrBold)
	assert.Equal(t, 5, end)
	assert.Equal(t, 'h', b.Get(2, 0).Rune)
	assert.Equal(t, 'l', b.Get(4, 0).Rune)
	assert.Equal(t, ' ', b.Get(5, 0).Rune)
	assert.Equal(t, testBg, b.Get(2, 0).Bg)
	assert.Equal(t, AttrBold, b.Get(2, 0).Attrs)
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(5, 2)

	b := NewBuffer(5, 2)
	b.Clear(testBg)
	b.Text(0, 1, 5, "ok", testInk, AttrNone)
	b.Flush(screen)
	screen.Show()

	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, 'k', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, ToTcell(testInk), fg)
	assert.Equal(t, ToTcell(testBg), bg)
}

func TestToTcell(t *testing.T) {
	r, g, b := ToTcell(palette.RGB{R: 250, G: 129.4, B: 18}).RGB()
	assert.Equal(t, int32(250), r)
	assert.Equal(t, int32(129), g)
	assert.Equal(t, int32(18), b)
}

func TestCardRectGeometry(t *testing.T) {
	l := Layout{CardHeight: 0.5, CardWidth: 0.5, LargeOffset: 800}

	settled := l.CardRect(80, 40, timeline.ItemState{Scale: 1})
	assert.Equal(t, Rect{X: 20, Y: 10, W: 40, H: 20}, settled)

	hidden := l.CardRect(80, 40, timeline.ItemState{Scale: 1, OffsetY: 800})
	assert.Equal(t, settled.Y+40, hidden.Y)

	shrunk := l.CardRect(80, 40, timeline.ItemState{Scale: 0.5})
	assert.Equal(t, Rect{X: 30, Y: 15, W: 20, H: 10}, shrunk)

	l.MaxWidth = 30
	assert.Equal(t, 30, l.CardRect(80, 40, timeline.ItemState{Scale: 1}).W)
}

func TestPaintStackAtProgress(t *testing.T) {
	p := timeline.DefaultParams(2)
	stack, err := timeline.New(p)
	require.NoError(t, err)

	cards := []Card{
		{Title: "A", Fill: testFill, Ink: testInk, Border: testInk},
		{Title: "B", Fill: palette.Black, Ink: testInk, Border: testInk},
	}
	buf := NewBuffer(60, 30)
	painter := NewPainter(buf, DefaultLayout())

	paint := func(raw float64) {
		painter.Paint(Scene{
			Title:  "DECK",
			Global: stack.Global(raw),
			Items:  stack.Items(raw, nil),
			Cards:  cards,
			Status: "status",
		})
	}

	// Nothing entered yet: background and title only
	paint(0)
	center := buf.Get(30, 15)
	assert.Equal(t, stack.Global(0).Background, center.Bg)
	assert.Equal(t, 's', buf.Get(1, 29).Rune)

	// Both settled: the top card covers the center
	paint(1)
	assert.Equal(t, palette.Black, buf.Get(30, 15).Bg)
	r := DefaultLayout().CardRect(60, 30, stack.Item(1, 1))
	assert.Equal(t, '┌', buf.Get(r.X, r.Y).Rune)
	assert.Equal(t, 'B', buf.Get(r.X+2, r.Y+2).Rune)
}

func TestPaintZOrder(t *testing.T) {
	buf := NewBuffer(20, 10)
	painter := NewPainter(buf, Layout{CardHeight: 1, CardWidth: 1, LargeOffset: 800})

	lower := palette.RGB{R: 1}
	upper := palette.RGB{R: 2}
	painter.Paint(Scene{
		Global: timeline.GlobalState{Background: testBg},
		// Listed top first; z-order must still win
		Items: []timeline.ItemState{
			{Scale: 1, Opacity: 1, ZOrder: 11},
			{Scale: 1, Opacity: 1, ZOrder: 10},
		},
		Cards: []Card{{Fill: upper}, {Fill: lower}},
	})
	assert.Equal(t, upper, buf.Get(10, 5).Bg)
}

func TestPaintHalfOpacityBlends(t *testing.T) {
	buf := NewBuffer(20, 10)
	painter := NewPainter(buf, Layout{CardHeight: 1, CardWidth: 1})

	painter.Paint(Scene{
		Global: timeline.GlobalState{Background: testBg},
		Items:  []timeline.ItemState{{Scale: 1, Opacity: 0.5}},
		Cards:  []Card{{Fill: testFill}},
	})
	assert.Equal(t, testBg.Blend(testFill, 0.5), buf.Get(10, 5).Bg)
}

func TestPaintEmptyBuffer(t *testing.T) {
	painter := NewPainter(NewBuffer(0, 0), DefaultLayout())
	assert.NotPanics(t, func() {
		painter.Paint(Scene{Title: "x", Items: []timeline.ItemState{{Scale: 1, Opacity: 1}}, Cards: []Card{{}}})
	})
}

func TestNewCards(t *testing.T) {
	cards, err := NewCards([]CardSource{
		{Title: "one", Fill: "#000", Badge: "Go"},
		{Title: "two"},
	})
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, palette.Black, cards[0].Fill)
	assert.Equal(t, "Go", cards[0].Badge)
	assert.Equal(t, cards[0].Ink, cards[0].Border)
	assert.Equal(t, palette.DefaultBackground[1], cards[1].Fill)
	assert.Equal(t, palette.DefaultTitle[1], cards[1].Ink)

	_, err = NewCards([]CardSource{{Ink: "nope"}})
	assert.ErrorIs(t, err, palette.ErrBadColor)
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps over the lazy dog", 10, 10)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 10)
	}

	short := wrap("the quick brown fox jumps over the lazy dog", 10, 2)
	require.Len(t, short, 2)
	assert.Contains(t, short[1], "…")

	assert.Nil(t, wrap("x", 0, 3))
	assert.Nil(t, wrap("", 5, 3))
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "F A T E S", spaced("FATES", 20))
	assert.Equal(t, "FATES", spaced("FATES", 6))
}
