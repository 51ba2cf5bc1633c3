// Package tracker implements the productivity tracker's data layer: six
// entity stores plus the coordinator that enforces every cross-entity rule.
// Stores never call each other; all knowledge of how tasks, notes, projects,
// labels and reminders relate lives here.
package tracker

import (
	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/intellitask/intellitask-cli/internal/store"
)

// Tracker owns the six entity stores and is the only component allowed to
// mutate them. All entities are created through its factory operations,
// which assign identifiers and seed defaults; callers never construct
// entities directly.
//
// The tracker is single-actor by design and holds no locks. Concurrent
// callers must add their own synchronization around it.
type Tracker struct {
	ids IDGenerator

	Users     *store.Store[models.User]
	Tasks     *store.Store[models.Task]
	Notes     *store.Store[models.Note]
	Projects  *store.Store[models.Project]
	Labels    *store.Store[models.Label]
	Reminders *store.Store[models.Reminder]
}

// New returns a tracker with empty stores. If ids is nil the default
// UUID-backed generator is used.
func New(ids IDGenerator) *Tracker {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Tracker{
		ids:       ids,
		Users:     store.New[models.User](),
		Tasks:     store.New[models.Task](),
		Notes:     store.New[models.Note](),
		Projects:  store.New[models.Project](),
		Labels:    store.New[models.Label](),
		Reminders: store.New[models.Reminder](),
	}
}
