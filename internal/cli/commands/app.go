// Package commands wires the tracker's operations to the command line. It
// is the only caller of the tracker's public surface; all cross-entity
// rules are enforced below it.
package commands

import "github.com/intellitask/intellitask-cli/internal/tracker"

// App carries the shared dependencies every command group needs.
type App struct {
	Tracker *tracker.Tracker
}
