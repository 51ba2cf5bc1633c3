package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var boardColumns = []models.Status{
	models.StatusPending,
	models.StatusInProgress,
	models.StatusCompleted,
	models.StatusCancelled,
}

var (
	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	priorityStyle = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		models.PriorityNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
)

// NewBoardCommand creates the board command: a status-column view of all
// tasks.
func NewBoardCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Display tasks as a status board",
		Action: func(c *cli.Context) error {
			byStatus := make(map[models.Status][]models.Task)
			for _, task := range app.Tracker.ListTasks() {
				byStatus[task.Status] = append(byStatus[task.Status], task)
			}

			width := 120
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
			colWidth := width/len(boardColumns) - 4
			if colWidth < 16 {
				colWidth = 16
			}

			columns := make([]string, 0, len(boardColumns))
			for _, status := range boardColumns {
				columns = append(columns, renderColumn(status, byStatus[status], colWidth))
			}
			fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
			return nil
		},
	}
}

func renderColumn(status models.Status, tasks []models.Task, width int) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", status, len(tasks))))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(cardStyle.Faint(true).Render("—"))
	}
	for _, task := range tasks {
		line := fmt.Sprintf("%s %s",
			priorityStyle[task.Priority].Render("●"),
			cardStyle.Render(truncateString(task.Description, width-4)))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return columnStyle.Width(width).Render(b.String())
}
