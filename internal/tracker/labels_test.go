package tracker

import (
	"testing"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachLabelToTask(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("work")
	require.NoError(t, err)
	task, err := trk.CreateTask("labelled", models.PriorityNone)
	require.NoError(t, err)

	attached, err := trk.AttachLabel(label.ID, task.ID, models.TargetTask)
	require.NoError(t, err)
	assert.True(t, attached)

	got, err := trk.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{label.ID}, got.LabelIDs)
}

func TestAttachLabelTwiceIsIdempotent(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("work")
	require.NoError(t, err)
	task, err := trk.CreateTask("labelled", models.PriorityNone)
	require.NoError(t, err)

	_, err = trk.AttachLabel(label.ID, task.ID, models.TargetTask)
	require.NoError(t, err)
	attached, err := trk.AttachLabel(label.ID, task.ID, models.TargetTask)
	require.NoError(t, err)
	assert.False(t, attached, "second attach reports already present, not an error")

	got, err := trk.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{label.ID}, got.LabelIDs, "attaching twice equals attaching once")
}

func TestAttachLabelMissingPieces(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("work")
	require.NoError(t, err)
	task, err := trk.CreateTask("labelled", models.PriorityNone)
	require.NoError(t, err)

	_, err = trk.AttachLabel("ghost", task.ID, models.TargetTask)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = trk.AttachLabel(label.ID, "ghost", models.TargetTask)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = trk.AttachLabel(label.ID, task.ID, models.TargetKind("Project"))
	require.ErrorIs(t, err, ErrValidation)
}

func TestDetachUnattachedLabelFails(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("work")
	require.NoError(t, err)
	task, err := trk.CreateTask("clean", models.PriorityNone)
	require.NoError(t, err)

	err = trk.DetachLabel(label.ID, task.ID, models.TargetTask)
	require.ErrorIs(t, err, ErrAssociation)

	got, err := trk.GetTask(task.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs, "failed detach leaves the label list unchanged")
}

func TestDetachFromMissingTargetIsNotFound(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("work")
	require.NoError(t, err)

	err = trk.DetachLabel(label.ID, "ghost", models.TargetNote)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttachAndDetachOnNotes(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("journal")
	require.NoError(t, err)
	note, err := trk.CreateNote("entry", "dear diary")
	require.NoError(t, err)

	attached, err := trk.AttachLabel(label.ID, note.ID, models.TargetNote)
	require.NoError(t, err)
	assert.True(t, attached)

	err = trk.DetachLabel(label.ID, note.ID, models.TargetNote)
	require.NoError(t, err)

	got, err := trk.GetNote(note.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)
}

func TestDeleteLabelCascades(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("everywhere")
	require.NoError(t, err)
	other, err := trk.CreateLabel("survivor")
	require.NoError(t, err)

	var taskIDs []string
	for i := 0; i < 3; i++ {
		task, err := trk.CreateTask("task", models.PriorityNone)
		require.NoError(t, err)
		_, err = trk.AttachLabel(label.ID, task.ID, models.TargetTask)
		require.NoError(t, err)
		_, err = trk.AttachLabel(other.ID, task.ID, models.TargetTask)
		require.NoError(t, err)
		taskIDs = append(taskIDs, task.ID)
	}
	var noteIDs []string
	for i := 0; i < 2; i++ {
		note, err := trk.CreateNote("note", "")
		require.NoError(t, err)
		_, err = trk.AttachLabel(label.ID, note.ID, models.TargetNote)
		require.NoError(t, err)
		noteIDs = append(noteIDs, note.ID)
	}

	removed, err := trk.DeleteLabel(label.ID)
	require.NoError(t, err)
	require.True(t, removed)

	// No task or note references the deleted label; other labels survive.
	for _, id := range taskIDs {
		task, err := trk.GetTask(id)
		require.NoError(t, err)
		assert.NotContains(t, task.LabelIDs, label.ID)
		assert.Contains(t, task.LabelIDs, other.ID)
	}
	for _, id := range noteIDs {
		note, err := trk.GetNote(id)
		require.NoError(t, err)
		assert.NotContains(t, note.LabelIDs, label.ID)
	}

	_, err = trk.GetLabel(label.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownLabelReportsFalse(t *testing.T) {
	trk := newTestTracker()

	removed, err := trk.DeleteLabel("ghost")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestQueriesByLabel(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("shared")
	require.NoError(t, err)

	task, err := trk.CreateTask("tagged task", models.PriorityNone)
	require.NoError(t, err)
	_, err = trk.AttachLabel(label.ID, task.ID, models.TargetTask)
	require.NoError(t, err)
	_, err = trk.CreateTask("untagged task", models.PriorityNone)
	require.NoError(t, err)

	note, err := trk.CreateNote("tagged note", "")
	require.NoError(t, err)
	_, err = trk.AttachLabel(label.ID, note.ID, models.TargetNote)
	require.NoError(t, err)

	tasks, err := trk.TasksByLabel(label.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)

	notes, err := trk.NotesByLabel(label.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)
}

func TestLabelByName(t *testing.T) {
	trk := newTestTracker()
	label, err := trk.CreateLabel("Deep Work")
	require.NoError(t, err)

	got, err := trk.LabelByName("deep work")
	require.NoError(t, err)
	assert.Equal(t, label.ID, got.ID)

	_, err = trk.LabelByName("unknown")
	require.ErrorIs(t, err, ErrNotFound)
}
