package render

import (
	"fmt"

	"github.com/lixenwraith/scrollstack/palette"
)

// Card is a resolved, paintable stack item
type Card struct {
	Title       string
	Subtitle    string
	Description string
	Badge       string
	Fill        palette.RGB
	Ink         palette.RGB
	Border      palette.RGB
}

// CardSource is an unresolved card, colors as strings; empty colors use defaults
type CardSource struct {
	Title       string
	Subtitle    string
	Description string
	Badge       string
	Fill        string
	Ink         string
	Border      string
}

// NewCards resolves card sources. Missing colors cycle through the default
// background palette with contrasting ink.
func NewCards(deck []CardSource) ([]Card, error) {
	cards := make([]Card, len(deck))
	for i, c := range deck {
		fill := palette.DefaultBackground[i%len(palette.DefaultBackground)]
		ink := palette.DefaultTitle[i%len(palette.DefaultTitle)]

		var err error
		if fill, err = parseOr(c.Fill, fill); err != nil {
			return nil, fmt.Errorf("card %d fill: %w", i, err)
		}
		if ink, err = parseOr(c.Ink, ink); err != nil {
			return nil, fmt.Errorf("card %d ink: %w", i, err)
		}
		border, err := parseOr(c.Border, ink)
		if err != nil {
			return nil, fmt.Errorf("card %d border: %w", i, err)
		}

		cards[i] = Card{
			Title:       c.Title,
			Subtitle:    c.Subtitle,
			Description: c.Description,
			Badge:       c.Badge,
			Fill:        fill,
			Ink:         ink,
			Border:      border,
		}
	}
	return cards, nil
}

func parseOr(s string, def palette.RGB) (palette.RGB, error) {
	if s == "" {
		return def, nil
	}
	return palette.Parse(s)
}
