package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateNote creates a new note. Titles must be non-empty; empty content is
// allowed.
func (t *Tracker) CreateNote(title, content string) (models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return models.Note{}, fmt.Errorf("%w: note title cannot be empty", ErrValidation)
	}
	now := time.Now()
	note := models.Note{
		ID:             t.ids.NewID(),
		Title:          title,
		Content:        content,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	return t.Notes.Save(note)
}

// GetNote returns the note with the given id.
func (t *Tracker) GetNote(id string) (models.Note, error) {
	note, ok, err := t.Notes.FindByID(id)
	if err != nil {
		return models.Note{}, err
	}
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return note, nil
}

// ListNotes returns all notes, in no particular order.
func (t *Tracker) ListNotes() []models.Note {
	return t.Notes.FindAll()
}

// UpdateNoteTitle changes a note's title and stamps its last-modified time.
func (t *Tracker) UpdateNoteTitle(id, title string) (models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return models.Note{}, fmt.Errorf("%w: note title cannot be empty", ErrValidation)
	}
	note, err := t.GetNote(id)
	if err != nil {
		return models.Note{}, err
	}
	note.Title = title
	note.Touch()
	return t.Notes.Save(note)
}

// UpdateNoteContent changes a note's content and stamps its last-modified
// time. Empty content is allowed.
func (t *Tracker) UpdateNoteContent(id, content string) (models.Note, error) {
	note, err := t.GetNote(id)
	if err != nil {
		return models.Note{}, err
	}
	note.Content = content
	note.Touch()
	return t.Notes.Save(note)
}

// DeleteNote removes a note. Reminders referencing it are left untouched.
func (t *Tracker) DeleteNote(id string) (bool, error) {
	return t.Notes.DeleteByID(id)
}
