package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - titles
	colorDim  = lipgloss.Color("240") // Dim gray - separators
	colorRed  = lipgloss.Color("167") // Soft red - unreachable cells
)

// styles binds the palette to one output writer, so colour is only emitted
// when w is a terminal.
type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
	miss  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorCyan),
		rule:  r.NewStyle().Foreground(colorDim),
		miss:  r.NewStyle().Foreground(colorRed),
	}
}

// printSep writes a section header framed by two rules of width sep runes:
//
//	-----
//	 title
//	-----
func (s styles) printSep(w io.Writer, title string, sep rune, width int) {
	rule := s.rule.Render(strings.Repeat(string(sep), width))
	fmt.Fprintf(w, "%s\n %s\n%s\n", rule, s.title.Render(title), rule)
}
