package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/intellitask/intellitask-cli/internal/cli/interactive"
	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/urfave/cli/v2"
)

// NewTaskCommand creates all subcommands for the 'task' command group.
func NewTaskCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage tasks",
		Subcommands: []*cli.Command{
			taskCreateCmd(app),
			taskListCmd(app),
			taskShowCmd(app),
			taskDoneCmd(app),
			taskUndoneCmd(app),
			taskStartCmd(app),
			taskStatusCmd(app),
			taskModifyCmd(app),
			taskDeleteCmd(app),
		},
	}
}

func taskCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Aliases:   []string{"add"},
		Usage:     "Create a new task",
		ArgsUsage: "[description]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Task priority (HIGH, MEDIUM, LOW, NONE)",
				Value:   "NONE",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Create the task interactively",
			},
		},
		Action: func(c *cli.Context) error {
			description := strings.Join(c.Args().Slice(), " ")
			priority := strings.ToUpper(c.String("priority"))

			if c.Bool("interactive") {
				answers, err := interactive.CreateTask()
				if err != nil {
					return err
				}
				description = answers.Description
				priority = answers.Priority
			} else if description == "" {
				fmt.Println("❌ Description is required when not in interactive mode.")
				fmt.Println("💡 Use 'intellitask task create \"My new task\"' or 'intellitask task create -i'")
				return fmt.Errorf("task description is required")
			}

			task, err := app.Tracker.CreateTask(description, models.Priority(priority))
			if err != nil {
				fmt.Printf("Error creating task: %v\n", err)
				return err
			}

			fmt.Printf("✅ Task created: %s\n", task.Description)
			fmt.Printf("ID: %s\n", task.ID)
			return nil
		},
	}
}

func taskListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Filter by status (PENDING, IN_PROGRESS, COMPLETED, CANCELLED)",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Filter by priority (HIGH, MEDIUM, LOW, NONE)",
			},
		},
		Action: func(c *cli.Context) error {
			var (
				tasks []models.Task
				err   error
			)
			switch {
			case c.String("status") != "":
				tasks, err = app.Tracker.TasksByStatus(models.Status(strings.ToUpper(c.String("status"))))
			case c.String("priority") != "":
				tasks, err = app.Tracker.TasksByPriority(models.Priority(strings.ToUpper(c.String("priority"))))
			default:
				tasks = app.Tracker.ListTasks()
			}
			if err != nil {
				fmt.Printf("Error listing tasks: %v\n", err)
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found. Use 'intellitask task create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\t \tDESCRIPTION\tPRIORITY\tSTATUS\tLABELS")
			fmt.Fprintln(w, "--\t \t-----------\t--------\t------\t------")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
					shortID(t.ID),
					checkmark(t.Completed),
					truncateString(t.Description, 40),
					t.Priority,
					t.Status,
					len(t.LabelIDs))
			}
			w.Flush()
			return nil
		},
	}
}

func taskShowCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"info"},
		Usage:     "Show details for a task",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			task, err := app.Tracker.GetTask(c.Args().First())
			if err != nil {
				fmt.Printf("Error showing task: %v\n", err)
				return err
			}

			fmt.Printf("📋 Task: %s\n", task.Description)
			fmt.Printf("   ID: %s\n", task.ID)
			fmt.Printf("   Priority: %s\n", task.Priority)
			fmt.Printf("   Status: %s\n", task.Status)
			fmt.Printf("   Completed: %t\n", task.Completed)
			if len(task.LabelIDs) > 0 {
				fmt.Printf("   Labels:\n")
				for _, labelID := range task.LabelIDs {
					label, err := app.Tracker.GetLabel(labelID)
					if err != nil {
						// Dangling reference; show the raw id.
						fmt.Printf("   • %s\n", shortID(labelID))
						continue
					}
					fmt.Printf("   • %s (ID: %s)\n", label.Name, shortID(label.ID))
				}
			}
			return nil
		},
	}
}

func taskDoneCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a task as completed",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			task, err := app.Tracker.SetTaskCompleted(c.Args().First(), true)
			if err != nil {
				fmt.Printf("Error completing task: %v\n", err)
				return err
			}
			fmt.Printf("✅ Task completed: %s\n", task.Description)
			return nil
		},
	}
}

func taskUndoneCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "undone",
		Usage:     "Mark a completed task as pending again",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			task, err := app.Tracker.SetTaskCompleted(c.Args().First(), false)
			if err != nil {
				fmt.Printf("Error reopening task: %v\n", err)
				return err
			}
			fmt.Printf("🔄 Task reopened: %s (status %s)\n", task.Description, task.Status)
			return nil
		},
	}
}

func taskStartCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "start",
		Usage:     "Mark a task as in progress",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			task, err := app.Tracker.UpdateTaskStatus(c.Args().First(), models.StatusInProgress)
			if err != nil {
				fmt.Printf("Error starting task: %v\n", err)
				return err
			}
			fmt.Printf("▶️  Task started: %s\n", task.Description)
			return nil
		},
	}
}

func taskStatusCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Set a task's status",
		ArgsUsage: "[task-id] [status]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("task ID and status are required")
			}
			status := models.Status(strings.ToUpper(c.Args().Get(1)))
			task, err := app.Tracker.UpdateTaskStatus(c.Args().First(), status)
			if err != nil {
				fmt.Printf("Error updating task status: %v\n", err)
				return err
			}
			fmt.Printf("✅ Task %s is now %s\n", shortID(task.ID), task.Status)
			return nil
		},
	}
}

func taskModifyCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "modify",
		Usage:     "Modify a task's description or priority",
		ArgsUsage: "[task-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "New description",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "New priority (HIGH, MEDIUM, LOW, NONE)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			id := c.Args().First()
			modified := false

			if d := c.String("description"); d != "" {
				if _, err := app.Tracker.UpdateTaskDescription(id, d); err != nil {
					fmt.Printf("Error updating description: %v\n", err)
					return err
				}
				modified = true
			}
			if p := c.String("priority"); p != "" {
				if _, err := app.Tracker.UpdateTaskPriority(id, models.Priority(strings.ToUpper(p))); err != nil {
					fmt.Printf("Error updating priority: %v\n", err)
					return err
				}
				modified = true
			}
			if !modified {
				fmt.Println("💡 Nothing to modify. Use --description or --priority.")
				return nil
			}
			fmt.Printf("✅ Task %s updated\n", shortID(id))
			return nil
		},
	}
}

func taskDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteTask(id)
			if err != nil {
				fmt.Printf("Error deleting task: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No task found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  Task %s deleted\n", shortID(id))
			return nil
		},
	}
}
