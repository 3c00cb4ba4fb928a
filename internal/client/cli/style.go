package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // Green
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")). // Red
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray
)

func successAlert(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✓ "+msg))
}

func dangerAlert(w io.Writer, msg string) {
	fmt.Fprintln(w, dangerStyle.Render("✗ "+msg))
}

func pageTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func hint(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}
