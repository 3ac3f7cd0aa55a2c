package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/pkg/chart"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a schedule's
// computed rows. By default it opens an interactive table; --plain (or a
// non-terminal stdout) prints a static one for scripts and pipes.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [schedule]",
		Short: "Browse the computed rows of a schedule",
		Long: `Inspect parses a schedule, runs the layout engine, and shows one row per
item with its resolved position: explicit start date, duration, horizontal
offset and bar length in chart units, effective resource, and status.
Chained items and inherited resources are resolved the same way render
resolves them, which makes inspect useful for debugging layouts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := pipeline.Parse(cmd.Context(), pipeline.Options{Input: args[0]})
			if err != nil {
				return err
			}
			l, err := layout.Build(ch)
			if err != nil {
				return err
			}
			rows := inspectRows(ch, l)
			if plain || !isTerminal(os.Stdout) {
				printSchedule(ch.Title, rows)
				return nil
			}
			_, err = tea.NewProgram(newScheduleModel(ch.Title, rows)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a static table instead of the interactive browser")
	return cmd
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// inspectRows builds one display row per schedule item from the resolved
// geometry. Offset and length come from the layout, so chained start dates
// and inherited resources show their effective values.
func inspectRows(ch *chart.Chart, l layout.Layout) [][]string {
	rows := make([][]string, 0, len(ch.Items))
	for i, it := range ch.Items {
		lr := l.Rows[i]

		start := "—"
		if it.StartDate != nil {
			start = it.StartDate.Format("2006-01-02")
		}

		days := "—"
		length := "—"
		status := "milestone"
		if it.Duration != nil {
			days = strconv.Itoa(*it.Duration)
			length = strconv.FormatFloat(lr.Length, 'f', 1, 64)
			status = "done"
			if lr.Open {
				status = "open"
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			it.Title,
			start,
			days,
			strconv.FormatFloat(lr.Offset, 'f', 1, 64),
			length,
			ch.Resources[lr.Resource],
			status,
		})
	}
	return rows
}

// printSchedule prints the computed rows as a static table.
func printSchedule(title string, rows [][]string) {
	fmt.Println(StyleTitle.Render(title))
	fmt.Println(scheduleTable(rows, -1).Render())
}

// scheduleTable builds the row table. When cursor is non-negative the
// matching row is highlighted.
func scheduleTable(rows [][]string, cursor int) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Item", "Start", "Days", "Offset", "Length", "Resource", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return listSelectedStyle
			}
			if col == 0 || col == 7 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})
}

// =============================================================================
// scheduleModel - Interactive row browser
// =============================================================================

// scheduleModel is the bubbletea model for the inspect command.
type scheduleModel struct {
	title  string
	rows   [][]string
	cursor int
	height int
	offset int
}

// newScheduleModel creates a schedule browser model.
func newScheduleModel(title string, rows [][]string) scheduleModel {
	return scheduleModel{
		title:  title,
		rows:   rows,
		height: 15,
	}
}

func (m scheduleModel) Init() tea.Cmd {
	return nil
}

func (m scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m scheduleModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	b.WriteString(scheduleTable(m.rows[m.offset:end], m.cursor-m.offset).Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}
