package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/scrollstack/config"
	"github.com/lixenwraith/scrollstack/palette"
	"github.com/lixenwraith/scrollstack/timeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the compiled entry windows and color stops",
	Long: `Compile the configured deck and print its timeline:

  - Per-card entry windows in card and scroll space
  - The shared background/title color stop layout with swatches
  - Any color stops pinned to keep the timeline ordered`,
	RunE: runInspect,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

func runInspect(cmd *cobra.Command, args []string) error {
	loader, cfg, stack, err := loadStack()
	if err != nil {
		return err
	}
	writeInspect(cmd.OutOrStdout(), loader.Path(), cfg, stack)
	return nil
}

func writeInspect(w io.Writer, source string, cfg *config.Config, stack *timeline.Stack) {
	if source == "" {
		source = "built-in defaults"
	}
	p := stack.Params()

	fmt.Fprintln(w, headerStyle.Render("scrollstack timeline"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("source:"), source)
	fmt.Fprintf(w, "%s %d items, buffer %d, %d slots, start offset %.2f, fingerprint %016x\n\n",
		labelStyle.Render("stack:"), stack.Len(), p.StaggerBuffer, stack.TotalSlots(), p.StartOffset, p.Fingerprint())

	deck := cfg.Deck()
	rows := [][]string{{"#", "card", "card space", "scroll space", "z"}}
	for i := 0; i < stack.Len(); i++ {
		win := stack.Window(i)
		rows = append(rows, []string{
			fmt.Sprint(i),
			deck[i].Title,
			fmt.Sprintf("%.4f → %.4f", win.Card.Start, win.Card.End),
			fmt.Sprintf("%.4f → %.4f", win.Scroll.Start, win.Scroll.End),
			fmt.Sprint(p.Style.BaseOrder + p.Slot(i)),
		})
	}
	fmt.Fprintln(w, headerStyle.Render("entry windows"))
	fmt.Fprintln(w, table(rows))

	bg, title := stack.BackgroundTable(), stack.TitleTable()
	rows = [][]string{{"at", "color", "background", "title"}}
	for i, s := range stack.Stops() {
		_, b := bg.Breakpoint(i)
		_, t := title.Breakpoint(i)
		rows = append(rows, []string{
			fmt.Sprintf("%.4f", s.At),
			fmt.Sprint(s.Index),
			swatch(b) + " " + b.CSS(),
			swatch(t) + " " + t.CSS(),
		})
	}
	fmt.Fprintln(w, headerStyle.Render("color stops"))
	fmt.Fprintln(w, table(rows))

	collisions := stack.Collisions()
	if len(collisions) == 0 {
		printStatus(w, "✓", "color stops strictly ordered", color.FgGreen)
		return
	}
	for _, c := range collisions {
		printStatus(w, "⚠", "stop pinned: "+c.String(), color.FgYellow)
	}
}

// table lays out rows in left-aligned columns, first row as header
func table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			st := cellStyle.Width(widths[c] + 2)
			if r == 0 {
				st = st.Inherit(labelStyle)
			}
			cells[c] = st.Render(cell)
		}
		sb.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func swatch(c palette.RGB) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}

// printStatus prints a status line with a colored symbol
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}
