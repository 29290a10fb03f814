package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"CSS rgb", "rgb(250, 243, 225)", Cream, false},
		{"CSS rgb no spaces", "rgb(34,34,34)", Ink, false},
		{"CSS rgb upper", "RGB(250, 129, 18)", Orange, false},
		{"CSS rgb fractional", "rgb(0.5, 1, 254.5)", RGB{0.5, 1, 254.5}, false},
		{"Hex six", "#302722", Umber, false},
		{"Hex three", "#fff", White, false},
		{"Hex upper", "#FA8112", Orange, false},
		{"Padded", "  #000000 ", Black, false},
		{"Two channels", "rgb(1, 2)", RGB{}, true},
		{"Out of range", "rgb(256, 0, 0)", RGB{}, true},
		{"Negative", "rgb(-1, 0, 0)", RGB{}, true},
		{"Garbage channel", "rgb(a, 0, 0)", RGB{}, true},
		{"NaN channel", "rgb(nan, 0, 0)", RGB{}, true},
		{"Inf channel", "rgb(0, +Inf, 0)", RGB{}, true},
		{"Bad hex", "#12345", RGB{}, true},
		{"Named", "red", RGB{}, true},
		{"Empty", "", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBValid(t *testing.T) {
	assert.True(t, Cream.Valid())
	assert.True(t, RGB{R: 1, G: 0.5}.Valid())
	assert.False(t, RGB{R: math.NaN()}.Valid())
	assert.False(t, RGB{G: math.Inf(1)}.Valid())
	assert.False(t, RGB{B: -1}.Valid())
	assert.False(t, RGB{B: 256}.Valid())
}

func TestParseAllReportsIndex(t *testing.T) {
	_, err := ParseAll([]string{"#fff", "rgb(1,2,3)", "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadColor)
	assert.Contains(t, err.Error(), "color 2")

	p, err := ParseAll([]string{"#fff", "rgb(34, 34, 34)"})
	require.NoError(t, err)
	assert.Equal(t, Palette{White, Ink}, p)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("rgb()") })
	assert.NotPanics(t, func() { MustParse("#222") })
}

func TestPaletteAtClampsToLast(t *testing.T) {
	p := Palette{Cream, Ink, Orange}
	fallback := White

	assert.Equal(t, Cream, p.At(0, fallback))
	assert.Equal(t, Orange, p.At(2, fallback))
	assert.Equal(t, Orange, p.At(3, fallback))
	assert.Equal(t, Orange, p.At(100, fallback))
	assert.Equal(t, Cream, p.At(-1, fallback))

	var empty Palette
	assert.Equal(t, fallback, empty.At(0, fallback))
	assert.Equal(t, fallback, empty.At(5, fallback))
}

func TestLerp(t *testing.T) {
	a := RGB{0, 100, 200}
	b := RGB{100, 100, 0}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, a, Lerp(a, b, -0.5))
	assert.Equal(t, RGB{50, 100, 100}, Lerp(a, b, 0.5))
}

func TestLerpUnitSpace(t *testing.T) {
	a := RGB{0.1, 0.2, 0.3}
	b := RGB{0.7, 0.2, 0.9}

	// Last endpoint must survive exactly in the supplied space
	assert.Equal(t, b, Lerp(a, b, 1))
	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 0.4, mid.R, 1e-12)
	assert.InDelta(t, 0.6, mid.B, 1e-12)
}

func TestBlend(t *testing.T) {
	dst := Black
	src := White

	assert.Equal(t, dst, dst.Blend(src, 0))
	assert.Equal(t, src, dst.Blend(src, 1))
	assert.Equal(t, RGB{127.5, 127.5, 127.5}, dst.Blend(src, 0.5))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "rgb(250, 129, 18)", Orange.CSS())
	assert.Equal(t, "#fa8112", Orange.Hex())
	assert.Equal(t, "rgb(255, 0, 128)", RGB{300, -4, 127.6}.String())

	r, g, b := RGB{12.4, 12.5, 254.9}.Bytes()
	assert.Equal(t, uint8(12), r)
	assert.Equal(t, uint8(13), g)
	assert.Equal(t, uint8(255), b)
}

func TestNewTable(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1}, []RGB{Cream, Ink})
	require.NoError(t, err)
	assert.Equal(t, Cream, tbl.At(0))
	assert.Equal(t, Ink, tbl.At(1))

	_, err = NewTable([]float64{0, 1}, []RGB{Cream})
	assert.Error(t, err)
}

func TestCloneIndependent(t *testing.T) {
	p := Palette{Cream, Ink}
	c := p.Clone()
	c[0] = Orange
	assert.Equal(t, Cream, p[0])
	assert.Nil(t, Palette(nil).Clone())
	assert.Equal(t, []string{"rgb(250, 243, 225)", "rgb(34, 34, 34)"}, p.Strings())
}
