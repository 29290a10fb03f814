package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/scrollstack/timeline"
)

var (
	sampleAt    []float64
	sampleSteps int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Evaluate the timeline at given scroll progress values",
	Example: `  scrollstack sample --at 0.25 --at 0.5
  scrollstack sample --steps 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, stack, err := loadStack()
		if err != nil {
			return err
		}
		points := samplePoints(sampleAt, sampleSteps)
		for _, p := range points {
			writeSample(cmd.OutOrStdout(), stack, p)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Float64SliceVar(&sampleAt, "at", nil, "Progress values to evaluate (repeatable)")
	sampleCmd.Flags().IntVar(&sampleSteps, "steps", 4, "Evenly spaced samples over [0,1] when --at is not given")
}

// samplePoints returns at when set, otherwise steps+1 evenly spaced points including both ends
func samplePoints(at []float64, steps int) []float64 {
	if len(at) > 0 {
		return at
	}
	steps = max(steps, 1)
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) / float64(steps)
	}
	return out
}

func writeSample(w io.Writer, stack *timeline.Stack, p float64) {
	g := stack.Global(p)
	fmt.Fprintf(w, "progress %.4f  card %.4f  background %s  title %s @ %.2f\n",
		p, stack.CardProgress(p), g.Background.CSS(), g.Title.CSS(), g.TitleOpacity)
	for i, st := range stack.Items(p, nil) {
		fmt.Fprintf(w, "  item %d  y %7.2f  scale %.4f  opacity %.4f  z %d\n",
			i, st.OffsetY, st.Scale, st.Opacity, st.ZOrder)
	}
}
