package tracker

import (
	"testing"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReminderForTask(t *testing.T) {
	trk := newTestTracker()
	task, err := trk.CreateTask("remind me", models.PriorityNone)
	require.NoError(t, err)

	at := time.Now().Add(time.Hour)
	reminder, err := trk.CreateReminder("do it", at, models.TaskTarget(task.ID))
	require.NoError(t, err)
	assert.Equal(t, models.TargetTask, reminder.Target.Kind)
	assert.Equal(t, task.ID, reminder.Target.ID)
	assert.False(t, reminder.Dismissed)
}

func TestCreateReminderMissingTargetLeavesStoreUnchanged(t *testing.T) {
	trk := newTestTracker()

	_, err := trk.CreateReminder("orphan", time.Now(), models.TaskTarget("ghost"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, trk.Reminders.Len(), "no partial insert")

	_, err = trk.CreateReminder("orphan", time.Now(), models.NoteTarget("ghost"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, trk.Reminders.Len())
}

func TestCreateReminderValidation(t *testing.T) {
	trk := newTestTracker()
	task, err := trk.CreateTask("target", models.PriorityNone)
	require.NoError(t, err)

	_, err = trk.CreateReminder("  ", time.Now(), models.TaskTarget(task.ID))
	require.ErrorIs(t, err, ErrValidation)

	_, err = trk.CreateReminder("no time", time.Time{}, models.TaskTarget(task.ID))
	require.ErrorIs(t, err, ErrValidation)

	_, err = trk.CreateReminder("bad kind", time.Now(), models.ReminderTarget{Kind: "Project", ID: task.ID})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, trk.Reminders.Len())
}

func TestDueReminders(t *testing.T) {
	trk := newTestTracker()
	task, err := trk.CreateTask("target", models.PriorityNone)
	require.NoError(t, err)

	now := time.Now()
	past, err := trk.CreateReminder("overdue", now.Add(-time.Hour), models.TaskTarget(task.ID))
	require.NoError(t, err)
	_, err = trk.CreateReminder("future", now.Add(time.Hour), models.TaskTarget(task.ID))
	require.NoError(t, err)
	dismissed, err := trk.CreateReminder("dismissed but overdue", now.Add(-2*time.Hour), models.TaskTarget(task.ID))
	require.NoError(t, err)
	_, err = trk.DismissReminder(dismissed.ID)
	require.NoError(t, err)

	due := trk.DueReminders(now)
	require.Len(t, due, 1, "dismissed excluded regardless of time, future excluded")
	assert.Equal(t, past.ID, due[0].ID)
}

func TestDueRemindersIncludesExactBoundary(t *testing.T) {
	trk := newTestTracker()
	note, err := trk.CreateNote("target", "")
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err = trk.CreateReminder("on the dot", at, models.NoteTarget(note.ID))
	require.NoError(t, err)

	assert.Len(t, trk.DueReminders(at), 1, "reminderTime == asOf counts as due")
	assert.Empty(t, trk.DueReminders(at.Add(-time.Second)))
}

func TestReminderSurvivesTargetDeletion(t *testing.T) {
	trk := newTestTracker()
	task, err := trk.CreateTask("short lived", models.PriorityNone)
	require.NoError(t, err)
	reminder, err := trk.CreateReminder("dangling soon", time.Now(), models.TaskTarget(task.ID))
	require.NoError(t, err)

	_, err = trk.DeleteTask(task.ID)
	require.NoError(t, err)

	// The reminder still exists and still points at the dead task; target
	// existence is only checked at creation time.
	got, err := trk.GetReminder(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.Target.ID)
}

func TestUpdateAndDismissReminder(t *testing.T) {
	trk := newTestTracker()
	note, err := trk.CreateNote("target", "")
	require.NoError(t, err)
	reminder, err := trk.CreateReminder("first draft", time.Now().Add(time.Hour), models.NoteTarget(note.ID))
	require.NoError(t, err)

	updated, err := trk.UpdateReminderMessage(reminder.ID, "final wording")
	require.NoError(t, err)
	assert.Equal(t, "final wording", updated.Message)

	newTime := time.Now().Add(2 * time.Hour)
	updated, err = trk.UpdateReminderTime(reminder.ID, newTime)
	require.NoError(t, err)
	assert.True(t, updated.ReminderTime.Equal(newTime))

	updated, err = trk.DismissReminder(reminder.ID)
	require.NoError(t, err)
	assert.True(t, updated.Dismissed)

	_, err = trk.DismissReminder("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
