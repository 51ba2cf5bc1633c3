package commands

import (
	"fmt"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// Helper functions shared across commands

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// parseTargetKind maps the CLI's task/note argument onto a reminder target
// kind. The tracker rejects anything else anyway; this just gives a nicer
// message up front.
func parseTargetKind(s string) (models.TargetKind, error) {
	switch s {
	case "task", "Task":
		return models.TargetTask, nil
	case "note", "Note":
		return models.TargetNote, nil
	default:
		return "", fmt.Errorf("target kind must be 'task' or 'note', got %q", s)
	}
}

func checkmark(done bool) string {
	if done {
		return "✔"
	}
	return " "
}
