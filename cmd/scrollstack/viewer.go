package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollstack/config"
	"github.com/lixenwraith/scrollstack/cue"
	"github.com/lixenwraith/scrollstack/render"
	"github.com/lixenwraith/scrollstack/scroll"
	"github.com/lixenwraith/scrollstack/timeline"
)

// chimer receives the indices of items that just settled
type chimer interface {
	Play(items ...int)
	Configure(cfg cue.Config)
}

type silent struct{}

func (silent) Play(...int)          {}
func (silent) Configure(cue.Config) {}

type reload struct {
	cfg *config.Config
	err error
}

// viewer is the interactive preview: input drives the tracker, each frame
// evaluates the stack at the eased progress and paints it
type viewer struct {
	screen tcell.Screen
	cache  timeline.Cache
	stack  *timeline.Stack

	cards   []render.Card
	title   string
	frame   time.Duration
	tracker *scroll.Tracker
	buf     *render.Buffer
	painter *render.Painter
	cues    chimer

	last    float64 // progress at the previous frame
	items   []timeline.ItemState
	reloads chan reload
}

func newViewer(screen tcell.Screen, cfg *config.Config) (*viewer, error) {
	w, h := screen.Size()
	v := &viewer{
		screen:  screen,
		buf:     render.NewBuffer(w, h),
		cues:    silent{},
		reloads: make(chan reload, 4),
	}
	if err := v.apply(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

// apply compiles cfg and swaps it in; on error the current state is untouched
func (v *viewer) apply(cfg *config.Config) error {
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	stack, err := v.cache.Get(params)
	if err != nil {
		return err
	}
	cards, err := render.NewCards(cardSources(cfg.Deck()))
	if err != nil {
		return err
	}

	v.stack = stack
	v.cards = cards
	v.title = cfg.Demo.Title
	v.frame = time.Second / time.Duration(max(cfg.Demo.FrameRate, 1))

	layout := render.DefaultLayout()
	if cfg.Demo.CardHeight > 0 && cfg.Demo.CardHeight <= 1 {
		layout.CardHeight = cfg.Demo.CardHeight
	}
	layout.LargeOffset = params.Style.LargeOffset
	v.painter = render.NewPainter(v.buf, layout)

	_, h := v.buf.Size()
	progress := 0.0
	if v.tracker != nil {
		progress = v.tracker.Progress()
	}
	v.tracker = scroll.NewTracker(h, cfg.ScrollTracker())
	v.tracker.Jump(progress)
	v.last = progress

	v.cues.Configure(chimeConfig(cfg))

	log.Printf("stack compiled: %d items, %d slots, %d stops, %d collisions",
		stack.Len(), stack.TotalSlots(), len(stack.Stops()), len(stack.Collisions()))
	for _, c := range stack.Collisions() {
		log.Printf("color stop pinned: %s", c)
	}
	return nil
}

// cardSources maps configured cards onto paint layer input
func cardSources(deck []config.Card) []render.CardSource {
	out := make([]render.CardSource, len(deck))
	for i, c := range deck {
		out[i] = render.CardSource{
			Title:       c.Title,
			Subtitle:    c.Subtitle,
			Description: c.Description,
			Badge:       c.Tech,
			Fill:        c.Fill,
			Ink:         c.Ink,
			Border:      c.Border,
		}
	}
	return out
}

// chimeConfig maps demo settings onto chime synthesis
func chimeConfig(cfg *config.Config) cue.Config {
	return cue.Config{
		Enabled:    cfg.Demo.Sound,
		SampleRate: cue.DefaultSampleRate,
		BaseFreq:   cfg.Demo.BaseFreq,
		Volume:     cfg.Demo.Volume,
		Duration:   cfg.Demo.ChimeLength,
	}
}

// handleEvent applies one input event, returns false to quit
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			v.tracker.ScrollBy(1)
		case tcell.KeyUp:
			v.tracker.ScrollBy(-1)
		case tcell.KeyPgDn:
			v.tracker.PageDown()
		case tcell.KeyPgUp:
			v.tracker.PageUp()
		case tcell.KeyHome:
			v.tracker.ScrollTo(0)
		case tcell.KeyEnd:
			v.tracker.ScrollTo(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				v.tracker.ScrollBy(1)
			case 'k':
				v.tracker.ScrollBy(-1)
			case ' ':
				v.tracker.PageDown()
			case 'g':
				v.tracker.ScrollTo(0)
			case 'G':
				v.tracker.ScrollTo(1)
			}
		}

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			v.tracker.Wheel(1)
		case ev.Buttons()&tcell.WheelUp != 0:
			v.tracker.Wheel(-1)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		v.buf.Resize(w, h)
		v.tracker.Resize(h)
		v.screen.Sync()
	}
	return true
}

// tick advances easing, fires cues for items that settled since the last frame and paints
func (v *viewer) tick() {
	v.tracker.Step()
	p := v.tracker.Progress()

	if settled := v.stack.Settled(v.last, p); len(settled) > 0 {
		log.Printf("settled %v at progress %.4f", settled, p)
		v.cues.Play(settled...)
	}
	v.last = p

	v.draw()
}

func (v *viewer) draw() {
	p := v.tracker.Progress()
	v.items = v.stack.Items(p, v.items)

	v.painter.Paint(render.Scene{
		Title:  v.title,
		Global: v.stack.Global(p),
		Items:  v.items,
		Cards:  v.cards,
		Status: v.status(p),
	})
	v.buf.Flush(v.screen)
	v.screen.Show()
}

func (v *viewer) status(p float64) string {
	return fmt.Sprintf("%3.0f%%  card %d/%d  ↑↓ j k wheel  space pgdn  g G  q quit",
		p*100, v.stack.Active(p)+1, v.stack.Len())
}

// run is the frame loop; input arrives from a polling goroutine, reloads from the watcher
func (v *viewer) run() {
	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}

		case r := <-v.reloads:
			if r.err != nil {
				log.Printf("config reload failed: %v", r.err)
				continue
			}
			if err := v.apply(r.cfg); err != nil {
				log.Printf("config reload rejected, keeping previous stack: %v", err)
				continue
			}
			ticker.Reset(v.frame)

		case <-ticker.C:
			v.tick()
		}
	}
}
