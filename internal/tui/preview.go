package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/deskclock/internal/render"
)

func (m model) viewDisplay() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Width(18).
		Align(lipgloss.Right).
		PaddingRight(2)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	cfg := m.cfg
	lines := []string{
		titleBar(m.width, m.dirty),
		"",
		renderClockPreview(cfg.Format),
		"",
		row("Format", cfg.Format),
		row("Background", "#"+strings.TrimPrefix(cfg.Background, "#")),
		row("Chrome Height", strconv.Itoa(cfg.ChromeHeight)+"px"),
		row("Save Debounce", strconv.Itoa(cfg.SaveDebounceMS)+"ms"),
		row("Frame Rate", strconv.Itoa(cfg.FrameRate)+"fps"),
		row("Always On Top", strconv.FormatBool(cfg.OnTop())),
		row("Resizable", strconv.FormatBool(cfg.CanResize())),
		"",
		dimStyle.Render("  config: " + m.configPath),
	}

	if m.lastError != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		lines = append(lines, "", errStyle.Render("  "+m.lastError))
	} else if m.status != "" {
		okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		lines = append(lines, "", okStyle.Render("  "+m.status))
	}

	content := strings.Join(lines, "\n")

	body := lipgloss.NewStyle().
		Width(m.width).
		Padding(1, 2).
		Render(content)

	help := renderHelpBar(m.width)
	gap := m.height - lipgloss.Height(body) - lipgloss.Height(help)
	if gap < 0 {
		gap = 0
	}

	return body + strings.Repeat("\n", gap) + help
}

func titleBar(width int, dirty bool) string {
	title := "deskclock settings"
	if dirty {
		title += " *"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Width(width - 4).
		Padding(0, 1).
		Render(title)
}

// renderClockPreview shows the current time through the configured
// format, with each span tinted in its own color.
func renderClockPreview(format string) string {
	spans, err := render.ParseSpans(format)
	if err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render("  invalid format: " + err.Error())
	}

	now := time.Now()
	var sb strings.Builder
	sb.WriteString("  ")
	for _, span := range spans {
		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%06x", span.Color)))
		sb.WriteString(style.Render(now.Format(span.Format)))
	}
	return sb.String()
}

func renderHelpBar(width int) string {
	help := "e: edit  ctrl-s: save  q/esc: quit"
	return lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(help)
}
