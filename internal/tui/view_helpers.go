package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// fitText cuts v to max display cells, ending with "..." when shortened.
// Hangul takes two cells, so widths are measured with lipgloss.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}

	limit, suffix := max-3, "..."
	if max <= 3 {
		limit, suffix = max, ""
	}

	runes := []rune(v)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + suffix
}

// padRight pads v with spaces up to width display cells.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}

func formatFee(fee int64) string {
	if fee == 0 {
		return "free"
	}
	return fmt.Sprintf("%d won", fee)
}

func formatRating(r float64) string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", r)
}
