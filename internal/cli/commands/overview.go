package commands

import (
	"fmt"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/urfave/cli/v2"
)

// NewOverviewCommand creates the overview command: counts per entity type
// plus anything currently due.
func NewOverviewCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "overview",
		Usage: "Show a summary of everything in the tracker",
		Action: func(c *cli.Context) error {
			t := app.Tracker

			fmt.Println("📊 Overview")
			fmt.Printf("   Users:     %d\n", t.Users.Len())
			fmt.Printf("   Tasks:     %d\n", t.Tasks.Len())
			fmt.Printf("   Notes:     %d\n", t.Notes.Len())
			fmt.Printf("   Projects:  %d\n", t.Projects.Len())
			fmt.Printf("   Labels:    %d\n", t.Labels.Len())
			fmt.Printf("   Reminders: %d\n", t.Reminders.Len())

			pending, _ := t.TasksByStatus(models.StatusPending)
			inProgress, _ := t.TasksByStatus(models.StatusInProgress)
			completed, _ := t.TasksByStatus(models.StatusCompleted)
			fmt.Printf("\n   Task status: %d pending, %d in progress, %d completed\n",
				len(pending), len(inProgress), len(completed))

			due := t.DueReminders(time.Now())
			if len(due) > 0 {
				fmt.Printf("\n🔔 Due now:\n")
				for _, r := range due {
					fmt.Printf("   • %s (%s)\n", r.Message, formatTime(r.ReminderTime))
				}
			}
			return nil
		},
	}
}
