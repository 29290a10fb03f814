package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scrollstack/config"
	"github.com/lixenwraith/scrollstack/timeline"
)

var (
	exportFormat string
	exportOut    string
	exportFrames int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the compiled timeline as YAML or JSON",
	Long: `Write the compiled timeline for consumption by other renderers:
entry windows, color stops with resolved colors, pinned stops and
optionally a list of pre-evaluated frames.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(exportFormat); err != nil {
			return err
		}
		_, cfg, stack, err := loadStack()
		if err != nil {
			return err
		}

		doc := newExportDoc(cfg, stack, exportFrames)
		if exportOut == "" {
			return writeExport(cmd.OutOrStdout(), exportFormat, doc)
		}
		return writeExportFile(exportOut, exportFormat, doc)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().IntVar(&exportFrames, "frames", 0, "Also export N+1 evenly spaced evaluated frames")
}

type exportDoc struct {
	Items         int           `yaml:"items" json:"items"`
	StaggerBuffer int           `yaml:"stagger_buffer" json:"stagger_buffer"`
	TotalSlots    int           `yaml:"total_slots" json:"total_slots"`
	StartOffset   float64       `yaml:"start_offset" json:"start_offset"`
	Cards         []config.Card `yaml:"cards" json:"cards"`
	Windows       []exportWin   `yaml:"windows" json:"windows"`
	Stops         []exportStop  `yaml:"stops" json:"stops"`
	Collisions    []string      `yaml:"collisions,omitempty" json:"collisions,omitempty"`
	Frames        []exportFrame `yaml:"frames,omitempty" json:"frames,omitempty"`
}

type exportWin struct {
	Item        int     `yaml:"item" json:"item"`
	CardStart   float64 `yaml:"card_start" json:"card_start"`
	CardEnd     float64 `yaml:"card_end" json:"card_end"`
	ScrollStart float64 `yaml:"scroll_start" json:"scroll_start"`
	ScrollEnd   float64 `yaml:"scroll_end" json:"scroll_end"`
}

type exportStop struct {
	At         float64 `yaml:"at" json:"at"`
	Color      int     `yaml:"color" json:"color"`
	Background string  `yaml:"background" json:"background"`
	Title      string  `yaml:"title" json:"title"`
}

type exportFrame struct {
	Progress     float64      `yaml:"progress" json:"progress"`
	Background   string       `yaml:"background" json:"background"`
	Title        string       `yaml:"title" json:"title"`
	TitleOpacity float64      `yaml:"title_opacity" json:"title_opacity"`
	Items        []exportItem `yaml:"items" json:"items"`
}

type exportItem struct {
	OffsetY float64 `yaml:"offset_y" json:"offset_y"`
	Scale   float64 `yaml:"scale" json:"scale"`
	Opacity float64 `yaml:"opacity" json:"opacity"`
	ZOrder  int     `yaml:"z" json:"z"`
}

func newExportDoc(cfg *config.Config, stack *timeline.Stack, frames int) exportDoc {
	p := stack.Params()
	doc := exportDoc{
		Items:         stack.Len(),
		StaggerBuffer: p.StaggerBuffer,
		TotalSlots:    stack.TotalSlots(),
		StartOffset:   p.StartOffset,
		Cards:         cfg.Deck(),
	}

	for i := 0; i < stack.Len(); i++ {
		w := stack.Window(i)
		doc.Windows = append(doc.Windows, exportWin{
			Item:        i,
			CardStart:   w.Card.Start,
			CardEnd:     w.Card.End,
			ScrollStart: w.Scroll.Start,
			ScrollEnd:   w.Scroll.End,
		})
	}

	bg, title := stack.BackgroundTable(), stack.TitleTable()
	for i, s := range stack.Stops() {
		_, b := bg.Breakpoint(i)
		_, t := title.Breakpoint(i)
		doc.Stops = append(doc.Stops, exportStop{At: s.At, Color: s.Index, Background: b.CSS(), Title: t.CSS()})
	}

	for _, c := range stack.Collisions() {
		doc.Collisions = append(doc.Collisions, c.String())
	}

	if frames > 0 {
		var items []timeline.ItemState
		for _, at := range samplePoints(nil, frames) {
			g := stack.Global(at)
			items = stack.Items(at, items)
			f := exportFrame{
				Progress:     at,
				Background:   g.Background.CSS(),
				Title:        g.Title.CSS(),
				TitleOpacity: g.TitleOpacity,
				Items:        make([]exportItem, len(items)),
			}
			for i, st := range items {
				f.Items[i] = exportItem{OffsetY: st.OffsetY, Scale: st.Scale, Opacity: st.Opacity, ZOrder: st.ZOrder}
			}
			doc.Frames = append(doc.Frames, f)
		}
	}
	return doc
}

func checkFormat(format string) error {
	switch format {
	case "yaml", "yml", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q, want yaml or json", format)
	}
}

// writeExportFile creates path only for a known format and reports close errors
func writeExportFile(path, format string, doc exportDoc) (err error) {
	if err := checkFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return writeExport(f, format, doc)
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
