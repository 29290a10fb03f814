// Package config loads scrollstack settings from TOML or YAML files with
// environment overrides, and converts them into engine parameters.
package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/scrollstack/palette"
	"github.com/lixenwraith/scrollstack/scroll"
	"github.com/lixenwraith/scrollstack/timeline"
)

// Config holds all scrollstack settings.
type Config struct {
	Stack  StackConfig  `mapstructure:"stack"`
	Style  StyleConfig  `mapstructure:"style"`
	Scroll ScrollConfig `mapstructure:"scroll"`
	Demo   DemoConfig   `mapstructure:"demo"`
	Cards  []Card       `mapstructure:"cards"`
}

// StackConfig holds timeline parameters.
type StackConfig struct {
	// Items forces a card count; placeholder cards pad the deck when larger than Cards.
	Items              int      `mapstructure:"items"`
	StaggerBuffer      int      `mapstructure:"stagger_buffer"`
	EntryFraction      float64  `mapstructure:"entry_fraction"`
	ColorEntryFraction float64  `mapstructure:"color_entry_fraction"`
	StartOffset        float64  `mapstructure:"start_offset"`
	TrailHold          float64  `mapstructure:"trail_hold"`
	TrailEnd           float64  `mapstructure:"trail_end"`
	TitleFadeEnd       float64  `mapstructure:"title_fade_end"`
	TitleFadeTo        float64  `mapstructure:"title_fade_to"`
	BackgroundColors   []string `mapstructure:"background_colors"`
	TitleColors        []string `mapstructure:"title_colors"`
	BackgroundFallback string   `mapstructure:"background_fallback"`
	TitleFallback      string   `mapstructure:"title_fallback"`
}

// StyleConfig holds per-item transform constants.
type StyleConfig struct {
	LargeOffset float64 `mapstructure:"large_offset"`
	ShrinkStep  float64 `mapstructure:"shrink_step"`
	BaseOrder   int     `mapstructure:"base_order"`
}

// ScrollConfig holds section geometry and easing.
type ScrollConfig struct {
	Multiplier float64 `mapstructure:"multiplier"`
	Smoothing  float64 `mapstructure:"smoothing"`
	WheelRows  float64 `mapstructure:"wheel_rows"`
	Snap       float64 `mapstructure:"snap"`
}

// DemoConfig holds interactive viewer settings.
type DemoConfig struct {
	Title       string        `mapstructure:"title"`
	FrameRate   int           `mapstructure:"frame_rate"`
	CardHeight  float64       `mapstructure:"card_height"` // fraction of the viewport
	Sound       bool          `mapstructure:"sound"`
	Volume      float64       `mapstructure:"volume"`
	BaseFreq    float64       `mapstructure:"base_freq"`
	ChimeLength time.Duration `mapstructure:"chime_length"`
}

// Card is the payload of one stack item. The engine only uses the card count.
type Card struct {
	Title       string `mapstructure:"title" yaml:"title" json:"title"`
	Subtitle    string `mapstructure:"subtitle" yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string `mapstructure:"description" yaml:"description,omitempty" json:"description,omitempty"`
	Tech        string `mapstructure:"tech" yaml:"tech,omitempty" json:"tech,omitempty"`
	Fill        string `mapstructure:"fill" yaml:"fill,omitempty" json:"fill,omitempty"`
	Ink         string `mapstructure:"ink" yaml:"ink,omitempty" json:"ink,omitempty"`
	Border      string `mapstructure:"border" yaml:"border,omitempty" json:"border,omitempty"`
}

// Deck returns the cards to display, padded with placeholders up to Stack.Items
func (c *Config) Deck() []Card {
	deck := make([]Card, len(c.Cards), max(len(c.Cards), c.Stack.Items))
	copy(deck, c.Cards)
	for i := len(deck); i < c.Stack.Items; i++ {
		deck = append(deck, Card{Title: fmt.Sprintf("Card %d", i+1)})
	}
	return deck
}

// Params converts the configuration into validated timeline parameters
func (c *Config) Params() (timeline.Params, error) {
	p := timeline.DefaultParams(len(c.Deck()))

	p.StaggerBuffer = c.Stack.StaggerBuffer
	p.EntryFraction = c.Stack.EntryFraction
	p.ColorEntryFraction = c.Stack.ColorEntryFraction
	p.StartOffset = c.Stack.StartOffset
	p.TrailHold = c.Stack.TrailHold
	p.TrailEnd = c.Stack.TrailEnd
	p.TitleFadeEnd = c.Stack.TitleFadeEnd
	p.TitleFadeTo = c.Stack.TitleFadeTo
	p.Style = timeline.Style{
		LargeOffset: c.Style.LargeOffset,
		ShrinkStep:  c.Style.ShrinkStep,
		BaseOrder:   c.Style.BaseOrder,
	}

	var err error
	if p.Background, err = palette.ParseAll(c.Stack.BackgroundColors); err != nil {
		return p, fmt.Errorf("stack.background_colors: %w", err)
	}
	if p.Title, err = palette.ParseAll(c.Stack.TitleColors); err != nil {
		return p, fmt.Errorf("stack.title_colors: %w", err)
	}
	if c.Stack.BackgroundFallback != "" {
		if p.BackgroundFallback, err = palette.Parse(c.Stack.BackgroundFallback); err != nil {
			return p, fmt.Errorf("stack.background_fallback: %w", err)
		}
	}
	if c.Stack.TitleFallback != "" {
		if p.TitleFallback, err = palette.Parse(c.Stack.TitleFallback); err != nil {
			return p, fmt.Errorf("stack.title_fallback: %w", err)
		}
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ScrollTracker converts to tracker settings
func (c *Config) ScrollTracker() scroll.Config {
	return scroll.Config{
		Multiplier: c.Scroll.Multiplier,
		Smoothing:  c.Scroll.Smoothing,
		WheelRows:  c.Scroll.WheelRows,
		Snap:       c.Scroll.Snap,
	}
}
