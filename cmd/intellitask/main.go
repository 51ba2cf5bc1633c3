package main

import (
	"fmt"
	"log"
	"os"

	"github.com/intellitask/intellitask-cli/internal/cli/commands"
	"github.com/intellitask/intellitask-cli/internal/config"
	"github.com/intellitask/intellitask-cli/internal/persistence"
	"github.com/intellitask/intellitask-cli/internal/tracker"
	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	trk := tracker.New(tracker.UUIDGenerator{})
	snapshots := persistence.NewManager(cfg.DataFilePath(),
		trk.Users, trk.Tasks, trk.Notes, trk.Projects, trk.Reminders, trk.Labels)

	// Load once before any operation; failures degrade to empty state.
	switch outcome, err := snapshots.Load(); outcome {
	case persistence.Fresh:
		fmt.Println("Data file not found. Starting with empty data.")
	case persistence.Corrupt:
		fmt.Printf("⚠️  Could not read saved data, starting fresh: %v\n", err)
	}

	appCtx := &commands.App{Tracker: trk}

	app := &cli.App{
		Name:    "intellitask",
		Usage:   "Personal productivity tracker for tasks, notes, projects and reminders",
		Version: Version,
		Commands: []*cli.Command{
			commands.NewTaskCommand(appCtx),
			commands.NewNoteCommand(appCtx),
			commands.NewProjectCommand(appCtx),
			commands.NewLabelCommand(appCtx),
			commands.NewReminderCommand(appCtx),
			commands.NewUserCommand(appCtx),

			// Views
			commands.NewBoardCommand(appCtx),
			commands.NewOverviewCommand(appCtx),
		},
	}

	runErr := app.Run(os.Args)

	// Save once, after all operations, before exit. A save failure is
	// reported but in-memory state is not rolled back.
	if err := snapshots.Save(); err != nil {
		fmt.Printf("⚠️  Failed to save data: %v\n", err)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
