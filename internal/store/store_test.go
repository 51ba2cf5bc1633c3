package store

import (
	"testing"

	"github.com/intellitask/intellitask-cli/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndFindByID(t *testing.T) {
	s := New[models.Task]()

	task := models.Task{ID: "t1", Description: "write tests", Priority: models.PriorityHigh, Status: models.StatusPending}
	saved, err := s.Save(task)
	require.NoError(t, err)
	assert.Equal(t, task, saved)

	got, ok, err := s.FindByID("t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "write tests", got.Description)
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestSaveOverwrites(t *testing.T) {
	s := New[models.Label]()

	_, err := s.Save(models.Label{ID: "l1", Name: "work"})
	require.NoError(t, err)
	_, err = s.Save(models.Label{ID: "l1", Name: "home"})
	require.NoError(t, err)

	got, ok, err := s.FindByID("l1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "home", got.Name)
	assert.Equal(t, 1, s.Len())
}

func TestSaveEmptyIDFails(t *testing.T) {
	s := New[models.Label]()

	_, err := s.Save(models.Label{Name: "nameless"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, s.Len())
}

func TestFindByIDEmptyIDFails(t *testing.T) {
	s := New[models.Task]()

	_, _, err := s.FindByID("")
	require.ErrorIs(t, err, ErrValidation)
}

func TestFindByIDAbsentIsNotAnError(t *testing.T) {
	s := New[models.Task]()

	_, ok, err := s.FindByID("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindAllReturnsDefensiveCopies(t *testing.T) {
	s := New[models.Task]()
	_, err := s.Save(models.Task{ID: "t1", Description: "original", LabelIDs: []string{"l1"}})
	require.NoError(t, err)

	all := s.FindAll()
	require.Len(t, all, 1)

	// Mutating the returned entity and its label list must not leak into
	// store state.
	all[0].Description = "mutated"
	all[0].LabelIDs[0] = "hacked"
	all[0].LabelIDs = append(all[0].LabelIDs, "extra")

	got, ok, err := s.FindByID("t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "original", got.Description)
	assert.Equal(t, []string{"l1"}, got.LabelIDs)
}

func TestSavedEntityIsIsolatedFromCaller(t *testing.T) {
	s := New[models.Task]()
	task := models.Task{ID: "t1", Description: "held by caller", LabelIDs: []string{"l1"}}
	_, err := s.Save(task)
	require.NoError(t, err)

	task.LabelIDs[0] = "changed-after-save"

	got, _, err := s.FindByID("t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, got.LabelIDs)
}

func TestDeleteByID(t *testing.T) {
	s := New[models.Note]()
	_, err := s.Save(models.Note{ID: "n1", Title: "doomed"})
	require.NoError(t, err)

	removed, err := s.DeleteByID("n1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteByID("n1")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.DeleteByID("")
	require.ErrorIs(t, err, ErrValidation)
}

func TestReplaceAllDiscardsExistingContents(t *testing.T) {
	s := New[models.Label]()
	_, err := s.Save(models.Label{ID: "old", Name: "old"})
	require.NoError(t, err)

	s.ReplaceAll(map[string]models.Label{
		"a": {ID: "a", Name: "alpha"},
		"b": {ID: "b", Name: "beta"},
	})

	assert.Equal(t, 2, s.Len())
	_, ok, err := s.FindByID("old")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplaceAllNilInstallsEmpty(t *testing.T) {
	s := New[models.User]()
	_, err := s.Save(models.User{ID: "u1", Username: "sam"})
	require.NoError(t, err)

	s.ReplaceAll(nil)
	assert.Equal(t, 0, s.Len())
}

func TestExportAllIsAnOwnedCopy(t *testing.T) {
	s := New[models.Task]()
	_, err := s.Save(models.Task{ID: "t1", Description: "keep me", LabelIDs: []string{"l1"}})
	require.NoError(t, err)

	exported := s.ExportAll()
	require.Len(t, exported, 1)

	// Mutate the export every way we can.
	entry := exported["t1"]
	entry.Description = "mutated"
	entry.LabelIDs[0] = "mutated"
	exported["t1"] = entry
	delete(exported, "t1")
	exported["t2"] = models.Task{ID: "t2"}

	assert.Equal(t, 1, s.Len())
	got, ok, err := s.FindByID("t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, []string{"l1"}, got.LabelIDs)
}
