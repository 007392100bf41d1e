// internal/cli/browse.go
package taskplot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/taskplot/internal/util"
	"github.com/spf13/cobra"
)

var browseStyle string

// browseCmd shows the computed ordering and values in an interactive table instead of
// drawing a chart.
var browseCmd = &cobra.Command{
	Use:   "browse <kind> <file> [file...]",
	Short: "Browse the task ordering and values interactively",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLayout(*GetConfig(), browseStyle, args)
		if err != nil {
			return err
		}
		p := tea.NewProgram(newBrowseModel(l), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseStyle, "style", "", "override the kind's style: bar or scatter")
	rootCmd.AddCommand(browseCmd)
}

const (
	taskColumnWidth    = 24
	browseHeaderHeight = 2
	browseFooterHeight = 2
)

var (
	browseTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	browseHelpStyle  = lipgloss.NewStyle().Faint(true)
)

type browseModel struct {
	title  string
	table  table.Model
	width  int
	height int
}

func newBrowseModel(l *layout) *browseModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "task", Width: taskColumnWidth},
	}
	for _, label := range l.Labels {
		columns = append(columns, table.Column{Title: label, Width: max(10, len(label))})
	}

	rows := make([]table.Row, 0, len(l.Names))
	for j, name := range l.Names {
		row := table.Row{fmt.Sprint(j), util.TruncateRunes(name, taskColumnWidth-1)}
		for i := range l.Values {
			row = append(row, util.FormatValue(l.Values[i][j]))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+3, 20)),
	)
	return &browseModel{
		title: fmt.Sprintf("%s: %s (%s)", l.Kind.Name, l.Kind.Title, l.Style),
		table: t,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(1, msg.Height-browseHeaderHeight-browseFooterHeight))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("↑/↓ move  q quit"))
	return b.String()
}
