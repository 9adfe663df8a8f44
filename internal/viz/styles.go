package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from one theme.
type styles struct {
	title   lipgloss.Style
	canvas  lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	active  lipgloss.Style
	editing lipgloss.Style
	errText lipgloss.Style
	keyHint lipgloss.Style
	subtle  lipgloss.Style
	graph   lipgloss.Style
	start   lipgloss.Color
	end     lipgloss.Color
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		canvas: lipgloss.NewStyle().Foreground(t.Canvas).Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		active:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		editing: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true),
		errText: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		keyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		graph:   lipgloss.NewStyle().Foreground(t.Accent),
		start:   t.Primary,
		end:     t.Accent,
	}
}

// GradientText colors each rune of text on a line from start to end.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	runes := []rune(text)
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Separator is a muted horizontal rule.
func (s styles) Separator(width int) string {
	if width < 1 {
		return ""
	}
	return s.subtle.Render(strings.Repeat("─", width))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
