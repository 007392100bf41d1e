package taskplot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	kindHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	indexColor      = color.New(color.FgCyan).SprintFunc()
)

// printOrdering writes the plot kind followed by one "index name" line per task.
func printOrdering(w io.Writer, kind string, names []string) {
	fmt.Fprintln(w, kindHeaderStyle.Render(kind))
	for i, name := range names {
		fmt.Fprintf(w, "%s %s\n", indexColor(i), name)
	}
}
