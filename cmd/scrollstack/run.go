package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/scrollstack/config"
	"github.com/lixenwraith/scrollstack/cue/device"
)

var (
	soundFlag bool
	watchFlag bool
	startAt   float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive terminal preview",
	Long: `Open the interactive preview of the configured deck.

Keys:
  ↓ j / ↑ k     scroll one row
  space pgdn    scroll one screen
  g / G         jump to top / bottom (eased)
  wheel         scroll
  q esc         quit`,
	RunE: runViewer,
}

func init() {
	addViewerFlags(runCmd)
}

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&soundFlag, "sound", false, "Play a chime as each card settles")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Reload the config file when it changes (sound on/off needs a restart)")
	cmd.Flags().Float64Var(&startAt, "at", 0, "Initial scroll progress in [0,1]")
}

func runViewer(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if soundFlag {
		cfg.Demo.Sound = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nscrollstack crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	v, err := newViewer(screen, cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	v.tracker.Jump(startAt)
	v.last = v.tracker.Progress()

	if cfg.Demo.Sound {
		player := device.NewPlayer(chimeConfig(cfg))
		// Non-fatal, the preview runs without sound
		if err := player.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			v.cues = player
			defer player.Close()
		}
	}

	if watchFlag {
		err := loader.Watch(func(c *config.Config, err error) {
			select {
			case v.reloads <- reload{cfg: c, err: err}:
			default:
				log.Printf("config reload dropped, previous reload still pending")
			}
		})
		switch {
		case errors.Is(err, config.ErrNoConfigFile):
			log.Printf("watch requested but running on built-in defaults")
		case err != nil:
			return err
		default:
			log.Printf("watching %s", loader.Path())
		}
	}

	v.draw()
	v.run()
	return nil
}
