package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/intellitask/intellitask-cli/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerFor(t *testing.T, trk *tracker.Tracker, path string) *Manager {
	t.Helper()
	return NewManager(path, trk.Users, trk.Tasks, trk.Notes, trk.Projects, trk.Reminders, trk.Labels)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intellitask_data.json")

	trk := tracker.New(nil)
	user, err := trk.CreateUser("sam", "sam@example.com")
	require.NoError(t, err)
	task, err := trk.CreateTask("important work", models.PriorityHigh)
	require.NoError(t, err)
	label, err := trk.CreateLabel("urgent")
	require.NoError(t, err)
	attached, err := trk.AttachLabel(label.ID, task.ID, models.TargetTask)
	require.NoError(t, err)
	require.True(t, attached)
	note, err := trk.CreateNote("thoughts", "some content")
	require.NoError(t, err)
	project, err := trk.CreateProject("release", "ship it")
	require.NoError(t, err)
	_, err = trk.AddTaskToProject(project.ID, task.ID)
	require.NoError(t, err)
	reminder, err := trk.CreateReminder("follow up", time.Now().Add(time.Hour).Truncate(time.Second), models.NoteTarget(note.ID))
	require.NoError(t, err)

	require.NoError(t, newManagerFor(t, trk, path).Save())

	// Reload into fresh, empty stores.
	fresh := tracker.New(nil)
	outcome, err := newManagerFor(t, fresh, path).Load()
	require.NoError(t, err)
	assert.Equal(t, Loaded, outcome)

	gotUser, err := fresh.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)

	gotTask, err := fresh.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, gotTask.Priority)
	assert.Equal(t, []string{label.ID}, gotTask.LabelIDs)
	assert.Equal(t, task.Description, gotTask.Description)

	gotLabel, err := fresh.GetLabel(label.ID)
	require.NoError(t, err)
	assert.Equal(t, "urgent", gotLabel.Name)

	gotNote, err := fresh.GetNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "some content", gotNote.Content)

	gotProject, err := fresh.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{task.ID}, gotProject.TaskIDs)

	gotReminder, err := fresh.GetReminder(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TargetNote, gotReminder.Target.Kind)
	assert.Equal(t, note.ID, gotReminder.Target.ID)
	assert.True(t, gotReminder.ReminderTime.Equal(reminder.ReminderTime))
}

func TestLoadMissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	trk := tracker.New(nil)
	outcome, err := newManagerFor(t, trk, path).Load()
	require.NoError(t, err, "a missing snapshot is not an error")
	assert.Equal(t, Fresh, outcome)

	assert.Equal(t, 0, trk.Users.Len())
	assert.Equal(t, 0, trk.Tasks.Len())
	assert.Equal(t, 0, trk.Notes.Len())
	assert.Equal(t, 0, trk.Projects.Len())
	assert.Equal(t, 0, trk.Reminders.Len())
	assert.Equal(t, 0, trk.Labels.Len())
}

func TestLoadCorruptFileLeavesStoresEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json at all"), 0644))

	trk := tracker.New(nil)
	// Pre-populate to prove a corrupt load does not leave stale state.
	_, err := trk.CreateTask("stale", models.PriorityNone)
	require.NoError(t, err)

	outcome, err := newManagerFor(t, trk, path).Load()
	assert.Equal(t, Corrupt, outcome)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, trk.Tasks.Len(), "no partial load")
}

func TestLoadMalformedSectionFailsWholeLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	// tasks section is an array instead of a mapping.
	doc := `{"users":{},"tasks":[1,2,3],"notes":{},"projects":{},"reminders":{},"labels":{}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	trk := tracker.New(nil)
	outcome, err := newManagerFor(t, trk, path).Load()
	assert.Equal(t, Corrupt, outcome)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, trk.Tasks.Len())
	assert.Equal(t, 0, trk.Users.Len())
}

func TestLoadToleratesMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{"tasks":{"t1":{"id":"t1","description":"only tasks","completed":false,"priority":"LOW","status":"PENDING","label_ids":[]}}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	trk := tracker.New(nil)
	outcome, err := newManagerFor(t, trk, path).Load()
	require.NoError(t, err)
	assert.Equal(t, Loaded, outcome)

	assert.Equal(t, 1, trk.Tasks.Len())
	assert.Equal(t, 0, trk.Users.Len(), "absent section means empty")
	assert.Equal(t, 0, trk.Labels.Len())
}

func TestSaveWritesAllSixSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	trk := tracker.New(nil)
	require.NoError(t, newManagerFor(t, trk, path).Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, section := range []string{"users", "tasks", "notes", "projects", "reminders", "labels"} {
		assert.Contains(t, doc, section)
	}
}

func TestSaveCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")

	trk := tracker.New(nil)
	require.NoError(t, newManagerFor(t, trk, path).Save())

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	trk := tracker.New(nil)
	task, err := trk.CreateTask("first", models.PriorityNone)
	require.NoError(t, err)
	mgr := newManagerFor(t, trk, path)
	require.NoError(t, mgr.Save())

	_, err = trk.DeleteTask(task.ID)
	require.NoError(t, err)
	_, err = trk.CreateTask("second", models.PriorityNone)
	require.NoError(t, err)
	require.NoError(t, mgr.Save())

	fresh := tracker.New(nil)
	_, err = newManagerFor(t, fresh, path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Tasks.Len())
	tasks := fresh.ListTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "second", tasks[0].Description)
}
