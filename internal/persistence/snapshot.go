// Package persistence saves the tracker's complete state to a single JSON
// document and restores it at startup. The document has one section per
// entity type; a missing section is treated as empty, a malformed document
// fails the whole load and leaves every store empty.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/intellitask/intellitask-cli/internal/store"
)

// ErrPersistence means the snapshot document could not be read or written.
// Load failures degrade to an empty in-memory state and are never fatal;
// save failures are reported but do not roll back in-memory state.
var ErrPersistence = errors.New("persistence failed")

// Outcome describes how a Load ended.
type Outcome int

const (
	// Loaded means the snapshot was decoded and installed.
	Loaded Outcome = iota
	// Fresh means no snapshot file existed; stores start empty.
	Fresh
	// Corrupt means the snapshot existed but could not be decoded;
	// stores are left empty rather than partially loaded.
	Corrupt
)

// Snapshot is the serialized form of the whole dataset. All six sections
// are always present on save; absent sections on load decode as nil maps
// and are treated as empty.
type Snapshot struct {
	Users     map[string]models.User     `json:"users"`
	Tasks     map[string]models.Task     `json:"tasks"`
	Notes     map[string]models.Note     `json:"notes"`
	Projects  map[string]models.Project  `json:"projects"`
	Reminders map[string]models.Reminder `json:"reminders"`
	Labels    map[string]models.Label    `json:"labels"`
}

// Manager orchestrates saving and loading all six stores. It receives the
// stores as dependencies and only ever touches them through ExportAll and
// ReplaceAll, so it never holds a live alias into store state.
type Manager struct {
	path string

	users     *store.Store[models.User]
	tasks     *store.Store[models.Task]
	notes     *store.Store[models.Note]
	projects  *store.Store[models.Project]
	reminders *store.Store[models.Reminder]
	labels    *store.Store[models.Label]
}

// NewManager returns a manager persisting to the file at path.
func NewManager(path string,
	users *store.Store[models.User],
	tasks *store.Store[models.Task],
	notes *store.Store[models.Note],
	projects *store.Store[models.Project],
	reminders *store.Store[models.Reminder],
	labels *store.Store[models.Label],
) *Manager {
	return &Manager{
		path:      path,
		users:     users,
		tasks:     tasks,
		notes:     notes,
		projects:  projects,
		reminders: reminders,
		labels:    labels,
	}
}

// Path returns the snapshot file path.
func (m *Manager) Path() string {
	return m.path
}

// Save exports every store and writes the assembled document, overwriting
// any previous version. The write is not atomic against a crash mid-write.
func (m *Manager) Save() error {
	snap := Snapshot{
		Users:     m.users.ExportAll(),
		Tasks:     m.tasks.ExportAll(),
		Notes:     m.notes.ExportAll(),
		Projects:  m.projects.ExportAll(),
		Reminders: m.reminders.ExportAll(),
		Labels:    m.labels.ExportAll(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, m.path, err)
	}
	return nil
}

// Load reads the snapshot document and installs each section into its
// store. A missing file leaves all stores empty and reports Fresh; an
// unreadable or undecodable document leaves all stores empty and reports
// Corrupt together with the underlying error. Neither outcome is fatal.
func (m *Manager) Load() (Outcome, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.install(Snapshot{})
			return Fresh, nil
		}
		m.install(Snapshot{})
		return Corrupt, fmt.Errorf("%w: reading %s: %v", ErrPersistence, m.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.install(Snapshot{})
		return Corrupt, fmt.Errorf("%w: decoding %s: %v", ErrPersistence, m.path, err)
	}

	m.install(snap)
	return Loaded, nil
}

// install replaces every store's contents with the snapshot's sections.
// Nil sections install as empty.
func (m *Manager) install(snap Snapshot) {
	m.users.ReplaceAll(snap.Users)
	m.tasks.ReplaceAll(snap.Tasks)
	m.notes.ReplaceAll(snap.Notes)
	m.projects.ReplaceAll(snap.Projects)
	m.reminders.ReplaceAll(snap.Reminders)
	m.labels.ReplaceAll(snap.Labels)
}
