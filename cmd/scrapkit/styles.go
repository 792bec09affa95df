package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// styled renders text with style on a terminal and leaves it plain elsewhere.
func styled(w io.Writer, style lipgloss.Style, text string) string {
	if !supportsUnicode(w) {
		return text
	}
	return style.Render(text)
}

func successMark(w io.Writer) string {
	if supportsUnicode(w) {
		return successStyle.Render("✅")
	}
	return "[OK]"
}

// swatch shows a color sample beside a background class on a terminal and
// just the class elsewhere.
func swatch(w io.Writer, class string) string {
	hex, ok := theme.BackgroundColor(class)
	if !ok || !supportsUnicode(w) {
		return class
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + class
}
