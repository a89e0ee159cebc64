package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	bannerStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 2)
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// Dim renders text in grey.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Printer writes styled messages for the user.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a printer writing to w, or to stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w}
}

// Writer returns the underlying output.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Banner prints the tool banner shown before installation.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, bannerStyle.Render("PX VALET")+"  "+Hint("Laravel Valet + docker compose for local projects"))
	fmt.Fprintln(p.out)
}

// Println prints msg unstyled.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Success prints a green success message.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, warnStyle.Render("Warning: "+msg))
}

// Error prints a styled error block.
func (p *Printer) Error(title, detail, suggestion string) {
	fmt.Fprint(p.out, FormatError(title, detail, suggestion))
}

// ValidationOK prints a green check for a valid field.
func (p *Printer) ValidationOK(field, detail string) {
	fmt.Fprintf(p.out, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func (p *Printer) ValidationErr(field, message, suggestion string) {
	fmt.Fprintf(p.out, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(p.out, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}

// Skipped prints a dim line for something that was not checked.
func (p *Printer) Skipped(field, reason string) {
	fmt.Fprintf(p.out, "  %s %s\n", dimStyle.Render("--"), dimStyle.Render(field+" ("+reason+")"))
}
