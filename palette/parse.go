package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor indicates an unparseable color string
var ErrBadColor = errors.New("palette: unrecognized color")

// Parse reads "rgb(r, g, b)", "#rrggbb" or "#rgb" into a [0,255] color
func Parse(s string) (RGB, error) {
	str := strings.TrimSpace(s)
	lower := strings.ToLower(str)

	switch {
	case strings.HasPrefix(lower, "#"):
		// colorful.Hex accepts short reads such as "#12345"
		if n := len(lower) - 1; n != 3 && n != 6 {
			return RGB{}, fmt.Errorf("%w: %q: want 3 or 6 hex digits", ErrBadColor, s)
		}
		c, err := colorful.Hex(lower)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		r, g, b := c.RGB255()
		return RGB{R: float64(r), G: float64(g), B: float64(b)}, nil

	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		body := lower[len("rgb(") : len(lower)-1]
		parts := strings.Split(body, ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("%w: %q: want 3 channels, got %d", ErrBadColor, s, len(parts))
		}
		var ch [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || !inByteRange(v) {
				return RGB{}, fmt.Errorf("%w: %q: channel %d out of range", ErrBadColor, s, i)
			}
			ch[i] = v
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// inByteRange rejects NaN and infinities along with out of range values
func inByteRange(v float64) bool {
	return v >= 0 && v <= 255
}

// MustParse is Parse for package-level literals, panics on error
func MustParse(s string) RGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses a list of color strings, reporting the first failure with its position
func ParseAll(list []string) (Palette, error) {
	p := make(Palette, 0, len(list))
	for i, s := range list {
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}
