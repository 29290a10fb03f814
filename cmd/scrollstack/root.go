package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/scrollstack/config"
	"github.com/lixenwraith/scrollstack/timeline"
)

var (
	configPath string
	debugMode  bool

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "scrollstack",
	Short: "Scroll-synchronized stacked card timelines",
	Long: `scrollstack compiles a deck of cards into a scroll-driven timeline:
cards slide up and stack as the section scrolls, earlier cards recede,
and the background and title crossfade between palette colors.

With no subcommand, launches the interactive terminal preview.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(debugMode)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: runViewer,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./scrollstack.toml or user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug log to logs/scrollstack.log")

	addViewerFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadStack reads configuration and compiles the stack it describes
func loadStack() (*config.Loader, *config.Config, *timeline.Stack, error) {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	stack, err := timeline.New(params)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("compile timeline: %w", err)
	}
	return loader, cfg, stack, nil
}
