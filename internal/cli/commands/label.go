package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

// NewLabelCommand creates all subcommands for the 'label' command group.
func NewLabelCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Manage labels and their attachments",
		Subcommands: []*cli.Command{
			labelCreateCmd(app),
			labelListCmd(app),
			labelRenameCmd(app),
			labelAttachCmd(app),
			labelDetachCmd(app),
			labelTasksCmd(app),
			labelNotesCmd(app),
			labelDeleteCmd(app),
		},
	}
}

func labelCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new label",
		ArgsUsage: "[name]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("label name is required")
			}
			label, err := app.Tracker.CreateLabel(c.Args().First())
			if err != nil {
				fmt.Printf("Error creating label: %v\n", err)
				return err
			}
			fmt.Printf("✅ Label '%s' created\n", label.Name)
			fmt.Printf("ID: %s\n", label.ID)
			return nil
		},
	}
}

func labelListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all labels",
		Action: func(c *cli.Context) error {
			labels := app.Tracker.ListLabels()
			if len(labels) == 0 {
				fmt.Println("No labels found. Use 'intellitask label create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTASKS\tNOTES")
			fmt.Fprintln(w, "--\t----\t-----\t-----")
			for _, l := range labels {
				tasks, _ := app.Tracker.TasksByLabel(l.ID)
				notes, _ := app.Tracker.NotesByLabel(l.ID)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", shortID(l.ID), l.Name, len(tasks), len(notes))
			}
			w.Flush()
			return nil
		},
	}
}

func labelRenameCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Rename a label",
		ArgsUsage: "[label-id] [new-name]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("label ID and new name are required")
			}
			label, err := app.Tracker.RenameLabel(c.Args().First(), c.Args().Get(1))
			if err != nil {
				fmt.Printf("Error renaming label: %v\n", err)
				return err
			}
			fmt.Printf("✅ Label renamed to '%s'\n", label.Name)
			return nil
		},
	}
}

func labelAttachCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "attach",
		Usage:     "Attach a label to a task or note",
		ArgsUsage: "[label-id] [task|note] [target-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 3 {
				return fmt.Errorf("label ID, target kind and target ID are required")
			}
			kind, err := parseTargetKind(c.Args().Get(1))
			if err != nil {
				return err
			}
			attached, err := app.Tracker.AttachLabel(c.Args().First(), c.Args().Get(2), kind)
			if err != nil {
				fmt.Printf("Error attaching label: %v\n", err)
				return err
			}
			if !attached {
				fmt.Println("💡 Label is already attached.")
				return nil
			}
			fmt.Println("✅ Label attached")
			return nil
		},
	}
}

func labelDetachCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "detach",
		Usage:     "Detach a label from a task or note",
		ArgsUsage: "[label-id] [task|note] [target-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 3 {
				return fmt.Errorf("label ID, target kind and target ID are required")
			}
			kind, err := parseTargetKind(c.Args().Get(1))
			if err != nil {
				return err
			}
			if err := app.Tracker.DetachLabel(c.Args().First(), c.Args().Get(2), kind); err != nil {
				fmt.Printf("Error detaching label: %v\n", err)
				return err
			}
			fmt.Println("✅ Label detached")
			return nil
		},
	}
}

func labelTasksCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "tasks",
		Usage:     "List tasks carrying a label",
		ArgsUsage: "[label-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("label ID is required")
			}
			tasks, err := app.Tracker.TasksByLabel(c.Args().First())
			if err != nil {
				fmt.Printf("Error listing tasks by label: %v\n", err)
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks carry this label.")
				return nil
			}
			for _, t := range tasks {
				fmt.Printf("• [%s] %s (ID: %s)\n", checkmark(t.Completed), truncateString(t.Description, 50), shortID(t.ID))
			}
			return nil
		},
	}
}

func labelNotesCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "notes",
		Usage:     "List notes carrying a label",
		ArgsUsage: "[label-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("label ID is required")
			}
			notes, err := app.Tracker.NotesByLabel(c.Args().First())
			if err != nil {
				fmt.Printf("Error listing notes by label: %v\n", err)
				return err
			}
			if len(notes) == 0 {
				fmt.Println("No notes carry this label.")
				return nil
			}
			for _, n := range notes {
				fmt.Printf("• %s (ID: %s)\n", truncateString(n.Title, 50), shortID(n.ID))
			}
			return nil
		},
	}
}

func labelDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a label and remove it from every task and note",
		ArgsUsage: "[label-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("label ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteLabel(id)
			if err != nil {
				fmt.Printf("Error deleting label: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No label found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  Label %s deleted and detached everywhere\n", shortID(id))
			return nil
		},
	}
}
