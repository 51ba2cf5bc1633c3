package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/intellitask/intellitask-cli/internal/cli/interactive"
	"github.com/urfave/cli/v2"
)

// NewNoteCommand creates all subcommands for the 'note' command group.
func NewNoteCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "note",
		Aliases: []string{"n"},
		Usage:   "Manage notes",
		Subcommands: []*cli.Command{
			noteCreateCmd(app),
			noteListCmd(app),
			noteShowCmd(app),
			noteEditCmd(app),
			noteDeleteCmd(app),
		},
	}
}

func noteCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Aliases:   []string{"add"},
		Usage:     "Create a new note",
		ArgsUsage: "[title]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "content",
				Aliases: []string{"c"},
				Usage:   "Note content",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Create the note interactively",
			},
		},
		Action: func(c *cli.Context) error {
			title := strings.Join(c.Args().Slice(), " ")
			content := c.String("content")

			if c.Bool("interactive") {
				answers, err := interactive.CreateNote()
				if err != nil {
					return err
				}
				title = answers.Title
				content = answers.Content
			} else if title == "" {
				return fmt.Errorf("note title is required")
			}

			note, err := app.Tracker.CreateNote(title, content)
			if err != nil {
				fmt.Printf("Error creating note: %v\n", err)
				return err
			}

			fmt.Printf("✅ Note created: %s\n", note.Title)
			fmt.Printf("ID: %s\n", note.ID)
			return nil
		},
	}
}

func noteListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all notes",
		Action: func(c *cli.Context) error {
			notes := app.Tracker.ListNotes()
			if len(notes) == 0 {
				fmt.Println("No notes found. Use 'intellitask note create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tMODIFIED\tLABELS")
			fmt.Fprintln(w, "--\t-----\t--------\t------")
			for _, n := range notes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					shortID(n.ID),
					truncateString(n.Title, 40),
					formatTime(n.LastModifiedAt),
					len(n.LabelIDs))
			}
			w.Flush()
			return nil
		},
	}
}

func noteShowCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a note",
		ArgsUsage: "[note-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("note ID is required")
			}
			note, err := app.Tracker.GetNote(c.Args().First())
			if err != nil {
				fmt.Printf("Error showing note: %v\n", err)
				return err
			}

			fmt.Printf("📝 %s\n", note.Title)
			fmt.Printf("   ID: %s\n", note.ID)
			fmt.Printf("   Created: %s\n", formatTime(note.CreatedAt))
			fmt.Printf("   Modified: %s\n", formatTime(note.LastModifiedAt))
			if note.Content != "" {
				fmt.Printf("\n%s\n", note.Content)
			}
			return nil
		},
	}
}

func noteEditCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a note's title or content",
		ArgsUsage: "[note-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "New title",
			},
			&cli.StringFlag{
				Name:    "content",
				Aliases: []string{"c"},
				Usage:   "New content",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("note ID is required")
			}
			id := c.Args().First()
			modified := false

			if t := c.String("title"); t != "" {
				if _, err := app.Tracker.UpdateNoteTitle(id, t); err != nil {
					fmt.Printf("Error updating title: %v\n", err)
					return err
				}
				modified = true
			}
			if c.IsSet("content") {
				if _, err := app.Tracker.UpdateNoteContent(id, c.String("content")); err != nil {
					fmt.Printf("Error updating content: %v\n", err)
					return err
				}
				modified = true
			}
			if !modified {
				fmt.Println("💡 Nothing to edit. Use --title or --content.")
				return nil
			}
			fmt.Printf("✅ Note %s updated\n", shortID(id))
			return nil
		},
	}
}

func noteDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a note",
		ArgsUsage: "[note-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("note ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteNote(id)
			if err != nil {
				fmt.Printf("Error deleting note: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No note found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  Note %s deleted\n", shortID(id))
			return nil
		},
	}
}
