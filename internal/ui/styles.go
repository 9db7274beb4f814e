package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success, grants
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — prompts, warnings
	ColorError     = lipgloss.Color("#FF4444") // red    — errors, revokes
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — addresses, hashes
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — token amounts
	ColorMeta      = lipgloss.Color("#555555") // dim gray   — metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue  — UI chrome
	ColorToken     = lipgloss.Color("#9B5DE5") // purple     — token symbols
	ColorHighlight = lipgloss.Color("#F15BB5") // pink       — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleToken   = lipgloss.NewStyle().Foreground(ColorToken).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorToken).
			Bold(true)
)

// Addr renders an address or hash in the address color.
func Addr(s string) string { return StyleAddress.Render(s) }

// Success renders a success line with a check mark.
func Success(s string) string { return StyleSuccess.Render("✓ " + s) }

// Meta renders dim metadata text.
func Meta(s string) string { return StyleMeta.Render(s) }

// Hint renders a dim usage hint.
func Hint(s string) string { return StyleMeta.Render("→ " + s) }

// TruncateAddr shortens a 0x-address to 0x1234…abcd form.
func TruncateAddr(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

// KeyValueBlock renders a titled, bordered block of aligned key/value rows.
func KeyValueBlock(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(StyleMeta.Render(fmt.Sprintf("%-*s", width+2, r[0])))
		b.WriteString(r[1])
	}
	return StyleBorder.Render(b.String())
}
