package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// wrap word-wraps s to width columns, returning at most maxLines lines
func wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 || s == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = string(last) + "…"
	}
	return lines
}

// spaced letter-spaces s when it fits in width, the title treatment
func spaced(s string, width int) string {
	r := []rune(s)
	if len(r)*2-1 > width || len(r) == 0 {
		return s
	}
	var sb strings.Builder
	for i, c := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
