package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/urfave/cli/v2"
)

// Accepted layouts for --at, tried in order.
var reminderTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NewReminderCommand creates all subcommands for the 'reminder' command group.
func NewReminderCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "reminder",
		Aliases: []string{"r"},
		Usage:   "Manage reminders",
		Subcommands: []*cli.Command{
			reminderCreateCmd(app),
			reminderListCmd(app),
			reminderDueCmd(app),
			reminderEditCmd(app),
			reminderDismissCmd(app),
			reminderDeleteCmd(app),
		},
	}
}

func parseReminderTime(s string) (time.Time, error) {
	for _, layout := range reminderTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time %q (try e.g. \"2006-01-02 15:04\")", s)
}

func reminderCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a reminder for a task or note",
		ArgsUsage: "[message]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "for",
				Usage:    "Target kind: task or note",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Target task or note ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "at",
				Usage:    "When the reminder is due",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("reminder message is required")
			}
			message := strings.Join(c.Args().Slice(), " ")

			kind, err := parseTargetKind(c.String("for"))
			if err != nil {
				return err
			}
			at, err := parseReminderTime(c.String("at"))
			if err != nil {
				return err
			}

			target := models.ReminderTarget{Kind: kind, ID: c.String("id")}
			reminder, err := app.Tracker.CreateReminder(message, at, target)
			if err != nil {
				fmt.Printf("Error creating reminder: %v\n", err)
				return err
			}

			fmt.Printf("🔔 Reminder set for %s: %s\n", formatTime(reminder.ReminderTime), reminder.Message)
			fmt.Printf("ID: %s\n", reminder.ID)
			return nil
		},
	}
}

func reminderListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all reminders",
		Action: func(c *cli.Context) error {
			reminders := app.Tracker.ListReminders()
			if len(reminders) == 0 {
				fmt.Println("No reminders found.")
				return nil
			}
			printReminderTable(reminders)
			return nil
		},
	}
}

func reminderDueCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:  "due",
		Usage: "List reminders that are due now",
		Action: func(c *cli.Context) error {
			due := app.Tracker.DueReminders(time.Now())
			if len(due) == 0 {
				fmt.Println("Nothing due. 🎉")
				return nil
			}
			fmt.Printf("🔔 %d reminder(s) due:\n", len(due))
			printReminderTable(due)
			return nil
		},
	}
}

func printReminderTable(reminders []models.Reminder) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tMESSAGE\tTARGET\tDISMISSED")
	fmt.Fprintln(w, "--\t----\t-------\t------\t---------")
	for _, r := range reminders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%t\n",
			shortID(r.ID),
			formatTime(r.ReminderTime),
			truncateString(r.Message, 40),
			r.Target.Kind,
			shortID(r.Target.ID),
			r.Dismissed)
	}
	w.Flush()
}

func reminderEditCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a reminder's message or time",
		ArgsUsage: "[reminder-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "New message",
			},
			&cli.StringFlag{
				Name:  "at",
				Usage: "New time",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("reminder ID is required")
			}
			id := c.Args().First()
			modified := false

			if m := c.String("message"); m != "" {
				if _, err := app.Tracker.UpdateReminderMessage(id, m); err != nil {
					fmt.Printf("Error updating message: %v\n", err)
					return err
				}
				modified = true
			}
			if at := c.String("at"); at != "" {
				parsed, err := parseReminderTime(at)
				if err != nil {
					return err
				}
				if _, err := app.Tracker.UpdateReminderTime(id, parsed); err != nil {
					fmt.Printf("Error updating time: %v\n", err)
					return err
				}
				modified = true
			}
			if !modified {
				fmt.Println("💡 Nothing to edit. Use --message or --at.")
				return nil
			}
			fmt.Printf("✅ Reminder %s updated\n", shortID(id))
			return nil
		},
	}
}

func reminderDismissCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "dismiss",
		Usage:     "Dismiss a reminder",
		ArgsUsage: "[reminder-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("reminder ID is required")
			}
			reminder, err := app.Tracker.DismissReminder(c.Args().First())
			if err != nil {
				fmt.Printf("Error dismissing reminder: %v\n", err)
				return err
			}
			fmt.Printf("🔕 Reminder dismissed: %s\n", reminder.Message)
			return nil
		},
	}
}

func reminderDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a reminder",
		ArgsUsage: "[reminder-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("reminder ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteReminder(id)
			if err != nil {
				fmt.Printf("Error deleting reminder: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No reminder found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  Reminder %s deleted\n", shortID(id))
			return nil
		},
	}
}
