package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

// NewUserCommand creates all subcommands for the 'user' command group.
func NewUserCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage users",
		Subcommands: []*cli.Command{
			userCreateCmd(app),
			userListCmd(app),
			userShowCmd(app),
			userUpdateCmd(app),
			userDeleteCmd(app),
		},
	}
}

func userCreateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new user",
		ArgsUsage: "[username]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Email address",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("username is required")
			}
			user, err := app.Tracker.CreateUser(c.Args().First(), c.String("email"))
			if err != nil {
				fmt.Printf("Error creating user: %v\n", err)
				return err
			}
			fmt.Printf("✅ User '%s' created\n", user.Username)
			fmt.Printf("ID: %s\n", user.ID)
			return nil
		},
	}
}

func userListCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all users",
		Action: func(c *cli.Context) error {
			users := app.Tracker.ListUsers()
			if len(users) == 0 {
				fmt.Println("No users found. Use 'intellitask user create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL")
			fmt.Fprintln(w, "--\t--------\t-----")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(u.ID), u.Username, u.Email)
			}
			w.Flush()
			return nil
		},
	}
}

func userShowCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a user by ID or username",
		ArgsUsage: "[id-or-username]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("user ID or username is required")
			}
			arg := c.Args().First()
			user, err := app.Tracker.GetUser(arg)
			if err != nil {
				user, err = app.Tracker.UserByUsername(arg)
			}
			if err != nil {
				fmt.Printf("Error showing user: %v\n", err)
				return err
			}

			fmt.Printf("👤 %s\n", user.Username)
			fmt.Printf("   ID: %s\n", user.ID)
			fmt.Printf("   Email: %s\n", user.Email)
			return nil
		},
	}
}

func userUpdateCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a user's username or email",
		ArgsUsage: "[user-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "New username",
			},
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "New email",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("user ID is required")
			}
			id := c.Args().First()
			modified := false

			if u := c.String("username"); u != "" {
				if _, err := app.Tracker.UpdateUsername(id, u); err != nil {
					fmt.Printf("Error updating username: %v\n", err)
					return err
				}
				modified = true
			}
			if c.IsSet("email") {
				if _, err := app.Tracker.UpdateUserEmail(id, c.String("email")); err != nil {
					fmt.Printf("Error updating email: %v\n", err)
					return err
				}
				modified = true
			}
			if !modified {
				fmt.Println("💡 Nothing to update. Use --username or --email.")
				return nil
			}
			fmt.Printf("✅ User %s updated\n", shortID(id))
			return nil
		},
	}
}

func userDeleteCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a user",
		ArgsUsage: "[user-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("user ID is required")
			}
			id := c.Args().First()
			removed, err := app.Tracker.DeleteUser(id)
			if err != nil {
				fmt.Printf("Error deleting user: %v\n", err)
				return err
			}
			if !removed {
				fmt.Printf("❌ No user found with ID %s\n", shortID(id))
				return nil
			}
			fmt.Printf("🗑️  User %s deleted\n", shortID(id))
			return nil
		},
	}
}
