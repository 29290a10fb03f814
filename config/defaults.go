package config

import (
	"github.com/spf13/viper"

	"github.com/lixenwraith/scrollstack/cue"
	"github.com/lixenwraith/scrollstack/palette"
	"github.com/lixenwraith/scrollstack/scroll"
	"github.com/lixenwraith/scrollstack/timeline"
)

// Default deck, three cards
var defaultCards = []Card{
	{
		Title:       "I. CLOTHO",
		Subtitle:    "The Spinner",
		Description: "The Gasper. High-performance Go backend monitoring raw system data.",
		Tech:        "Go",
		Fill:        "rgb(250, 243, 225)",
		Ink:         "rgb(34, 34, 34)",
		Border:      "rgb(34, 34, 34)",
	},
	{
		Title:       "II. LACHESIS",
		Subtitle:    "The Measurer",
		Description: "The Weaver. Processes raw spools into a coherent life narrative using local LLMs.",
		Tech:        "Groq / Ollama",
		Fill:        "rgb(34, 34, 34)",
		Ink:         "rgb(250, 243, 225)",
		Border:      "rgb(250, 243, 225)",
	},
	{
		Title:       "III. ATROPOS",
		Subtitle:    "The Inflexible",
		Description: "The Cutter. The intent dashboard where noise is cut and focus is resumed.",
		Tech:        "Electron / React",
		Fill:        "rgb(250, 129, 18)",
		Ink:         "rgb(250, 243, 225)",
		Border:      "rgb(34, 34, 34)",
	},
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	v := viper.New()
	setDefaults(v)
	// Defaults are static; decoding cannot fail
	_ = v.Unmarshal(cfg, decodeHook)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("stack.items", 0)
	v.SetDefault("stack.stagger_buffer", timeline.DefaultStaggerBuffer)
	v.SetDefault("stack.entry_fraction", timeline.DefaultEntryFraction)
	v.SetDefault("stack.color_entry_fraction", timeline.DefaultColorEntryFraction)
	v.SetDefault("stack.start_offset", timeline.DefaultStartOffset)
	v.SetDefault("stack.trail_hold", timeline.DefaultTrailHold)
	v.SetDefault("stack.trail_end", timeline.DefaultTrailEnd)
	v.SetDefault("stack.title_fade_end", timeline.DefaultTitleFadeEnd)
	v.SetDefault("stack.title_fade_to", timeline.DefaultTitleFadeTo)
	v.SetDefault("stack.background_colors", palette.DefaultBackground.Strings())
	v.SetDefault("stack.title_colors", palette.DefaultTitle.Strings())
	v.SetDefault("stack.background_fallback", palette.White.CSS())
	v.SetDefault("stack.title_fallback", palette.Black.CSS())

	v.SetDefault("style.large_offset", timeline.DefaultLargeOffset)
	v.SetDefault("style.shrink_step", timeline.DefaultShrinkStep)
	v.SetDefault("style.base_order", timeline.DefaultBaseOrder)

	v.SetDefault("scroll.multiplier", scroll.DefaultMultiplier)
	v.SetDefault("scroll.smoothing", scroll.DefaultSmoothing)
	v.SetDefault("scroll.wheel_rows", scroll.DefaultWheelRows)
	v.SetDefault("scroll.snap", scroll.DefaultSnap)

	v.SetDefault("demo.title", "THE FATES")
	v.SetDefault("demo.frame_rate", 60)
	v.SetDefault("demo.card_height", 0.6)
	v.SetDefault("demo.sound", false)
	v.SetDefault("demo.volume", cue.DefaultVolume)
	v.SetDefault("demo.base_freq", cue.DefaultBaseFreq)
	v.SetDefault("demo.chime_length", cue.DefaultDuration)

	cards := make([]map[string]any, len(defaultCards))
	for i, c := range defaultCards {
		cards[i] = map[string]any{
			"title":       c.Title,
			"subtitle":    c.Subtitle,
			"description": c.Description,
			"tech":        c.Tech,
			"fill":        c.Fill,
			"ink":         c.Ink,
			"border":      c.Border,
		}
	}
	v.SetDefault("cards", cards)
}
