package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	promptStyle    = lipgloss.NewStyle().Bold(true)
	continuedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// isTTY reports whether stdout is an interactive terminal, the same
// check the teacher's builtins_term.go makes before styling output.
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderError formats an uncaught-exception or syntax-error message,
// in red when stdout is a terminal and plain text otherwise so piped
// output stays byte-for-byte comparable.
func renderError(msg string) string {
	if !isTTY() {
		return msg
	}
	return errorStyle.Render(msg)
}

// renderPrompt formats the REPL's primary ">>> " prompt.
func renderPrompt() string {
	if !isTTY() {
		return ">>> "
	}
	return promptStyle.Render(">>> ")
}

// renderContinuation formats the REPL's "..." continuation prompt
// shown while a suite is still open (from a line ending in ':' until a
// blank line).
func renderContinuation() string {
	if !isTTY() {
		return "... "
	}
	return continuedStyle.Render("... ")
}
