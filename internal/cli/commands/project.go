package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/urfave/cli/v2"
)

// NewProjectCommand creates all subcommands for the 'project' command group.
func NewProjectCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Manage projects",
		Subcommands: []*cli.Command{
			projectCreateCmd(app),
			projectListCmd(app),
			projectShowCmd(app),
			projectUpdateCmd(app),
			projectStatusCmd(app),
			projectAddTaskCmd(app),
			projectRemoveTaskCmd(app),
			projectTasksCmd(app),
			projectDeleteCmd(app),
		},
	}
}

func projectCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new project",
		ArgsUsage: "[name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Project description",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project name is required")
			}
			name := strings.Join(c.Args().Slice(), " ")

			project, err := app.Tracker.CreateProject(name, c.String("description"))
			if err != nil {
				fmt.Printf("Error creating project: %v\n", err)
				return err
			}

			fmt.Printf("✅ Project '%s' created successfully!\n", project.Name)
			fmt.Printf("ID: %s\n", project.ID)
			return nil
		},
	}
}

func projectListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all projects",
		Action: func(c *cli.Context) error {
			projects := app.Tracker.ListProjects()
			if len(projects) == 0 {
				fmt.Println("No projects found. Use 'intellitask project create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTASKS\tDESCRIPTION")
			fmt.Fprintln(w, "--\t----\t------\t-----\t-----------")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					shortID(p.ID),
					p.Name,
					p.Status,
					len(p.TaskIDs),
					truncateString(p.Description, 40))
			}
			w.Flush()
			return nil
		},
	}
}

func projectShowCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show details for a project",
		ArgsUsage: "[project-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project ID is required")
			}
			project, err := app.Tracker.GetProject(c.Args().First())
			if err != nil {
				fmt.Printf("Error showing project: %v\n", err)
				return err
			}

			fmt.Printf("📁 Project: %s\n", project.Name)
			fmt.Printf("   ID: %s\n", project.ID)
			fmt.Printf("   Status: %s\n", project.Status)
			if project.Description != "" {
				fmt.Printf("   Description: %s\n", project.Description)
			}
			fmt.Printf("   Created: %s\n", formatTime(project.CreatedAt))
			fmt.Printf("   Modified: %s\n", formatTime(project.LastModifiedAt))

			tasks, err := app.Tracker.TasksInProject(project.ID)
			if err != nil {
				return err
			}
			fmt.Printf("   Tasks: %d\n", len(tasks))
			for _, t := range tasks {
				fmt.Printf("   • [%s] %s (%s)\n", checkmark(t.Completed), truncateString(t.Description, 50), t.Status)
			}
			return nil
		},
	}
}

func projectUpdateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a project's name or description",
		ArgsUsage: "[project-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "New name",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "New description",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project ID is required")
			}
			id := c.Args().First()
			modified := false

			if n := c.String("name"); n != "" {
				if _, err := app.Tracker.UpdateProjectName(id, n); err != nil {
					fmt.Printf("Error updating name: %v\n", err)
					return err
				}
				modified = true
			}
			if c.IsSet("description") {
				if _, err := app.Tracker.UpdateProjectDescription(id, c.String("description")); err != nil {
					fmt.Printf("Error updating description: %v\n", err)
					return err
				}
				modified = true
			}
			if !modified {
				fmt.Println("💡 Nothing to update. Use --name or --description.")
				return nil
			}
			fmt.Printf("✅ Project %s updated\n", shortID(id))
			return nil
		},
	}
}

func projectStatusCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Set a project's status",
		ArgsUsage: "[project-id] [status]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("project ID and status are required")
			}
			status := models.Status(strings.ToUpper(c.Args().Get(1)))
			project, err := app.Tracker.UpdateProjectStatus(c.Args().First(), status)
			if err != nil {
				fmt.Printf("Error updating project status: %v\n", err)
				return err
			}
			fmt.Printf("✅ Project '%s' is now %s\n", project.Name, project.Status)
			return nil
		},
	}
}

func projectAddTaskCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "add-task",
		Usage:     "Add a task to a project",
		ArgsUsage: "[project-id] [task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("project ID and task ID are required")
			}
			added, err := app.Tracker.AddTaskToProject(c.Args().First(), c.Args().Get(1))
			if err != nil {
				fmt.Printf("Error adding task to project: %v\n", err)
				return err
			}
			if !added {
				fmt.Println("💡 Task is already in the project.")
				return nil
			}
			fmt.Println("✅ Task added to project")
			return nil
		},
	}
}

func projectRemoveTaskCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "remove-task",
		Usage:     "Remove a task from a project",
		ArgsUsage: "[project-id] [task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("project ID and task ID are required")
			}
			if err := app.Tracker.RemoveTaskFromProject(c.Args().First(), c.Args().Get(1)); err != nil {
				fmt.Printf("Error removing task from project: %v\n", err)
				return err
			}
			fmt.Println("✅ Task removed from project")
			return nil
		},
	}
}

func projectTasksCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "tasks",
		Usage:     "List the tasks in a project",
		ArgsUsage: "[project-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project ID is required")
			}
			tasks, err := app.Tracker.TasksInProject(c.Args().First())
			if err != nil {
				fmt.Printf("Error listing project tasks: %v\n", err)
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks in this project.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\t \tDESCRIPTION\tPRIORITY\tSTATUS")
			fmt.Fprintln(w, "--\t \t-----------\t--------\t------")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(t.ID),
					checkmark(t.Completed),
					truncateString(t.Description, 40),
					t.Priority,
					t.Status)
			}
			w.Flush()
			return nil
		},
	}
}

func projectDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a project (its tasks are kept)",
		ArgsUsage: "[project-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteProject(id)
			if err != nil {
				fmt.Printf("Error deleting project: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No project found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  Project %s deleted\n", shortID(id))
			return nil
		},
	}
}
