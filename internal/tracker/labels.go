package tracker

import (
	"fmt"
	"strings"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateLabel creates a new label.
func (t *Tracker) CreateLabel(name string) (models.Label, error) {
	if strings.TrimSpace(name) == "" {
		return models.Label{}, fmt.Errorf("%w: label name cannot be empty", ErrValidation)
	}
	label := models.Label{
		ID:   t.ids.NewID(),
		Name: name,
	}
	return t.Labels.Save(label)
}

// GetLabel returns the label with the given id.
func (t *Tracker) GetLabel(id string) (models.Label, error) {
	label, ok, err := t.Labels.FindByID(id)
	if err != nil {
		return models.Label{}, err
	}
	if !ok {
		return models.Label{}, fmt.Errorf("%w: label %s", ErrNotFound, id)
	}
	return label, nil
}

// LabelByName returns the first label whose name matches, ignoring case.
func (t *Tracker) LabelByName(name string) (models.Label, error) {
	if strings.TrimSpace(name) == "" {
		return models.Label{}, fmt.Errorf("%w: label name cannot be empty", ErrValidation)
	}
	for _, label := range t.Labels.FindAll() {
		if strings.EqualFold(label.Name, name) {
			return label, nil
		}
	}
	return models.Label{}, fmt.Errorf("%w: label %q", ErrNotFound, name)
}

// ListLabels returns all labels, in no particular order.
func (t *Tracker) ListLabels() []models.Label {
	return t.Labels.FindAll()
}

// RenameLabel changes a label's name.
func (t *Tracker) RenameLabel(id, name string) (models.Label, error) {
	if strings.TrimSpace(name) == "" {
		return models.Label{}, fmt.Errorf("%w: label name cannot be empty", ErrValidation)
	}
	label, err := t.GetLabel(id)
	if err != nil {
		return models.Label{}, err
	}
	label.Name = name
	return t.Labels.Save(label)
}

// AttachLabel attaches a label to the task or note identified by targetID.
// Both the label and the target must exist. Attaching a label that is
// already present is not an error; it returns false and leaves the target
// unchanged.
func (t *Tracker) AttachLabel(labelID, targetID string, kind models.TargetKind) (bool, error) {
	if _, err := t.GetLabel(labelID); err != nil {
		return false, err
	}
	switch kind {
	case models.TargetTask:
		task, err := t.GetTask(targetID)
		if err != nil {
			return false, err
		}
		if !task.AddLabel(labelID) {
			return false, nil
		}
		_, err = t.Tasks.Save(task)
		return err == nil, err
	case models.TargetNote:
		note, err := t.GetNote(targetID)
		if err != nil {
			return false, err
		}
		if !note.AddLabel(labelID) {
			return false, nil
		}
		note.Touch()
		_, err = t.Notes.Save(note)
		return err == nil, err
	default:
		return false, fmt.Errorf("%w: unknown target kind %q", ErrValidation, kind)
	}
}

// DetachLabel detaches a label from the task or note identified by targetID.
// Detaching a label that is not attached fails with ErrAssociation and
// leaves the target unchanged.
func (t *Tracker) DetachLabel(labelID, targetID string, kind models.TargetKind) error {
	switch kind {
	case models.TargetTask:
		task, err := t.GetTask(targetID)
		if err != nil {
			return err
		}
		if !task.RemoveLabel(labelID) {
			return fmt.Errorf("%w: label %s is not attached to task %s", ErrAssociation, labelID, targetID)
		}
		_, err = t.Tasks.Save(task)
		return err
	case models.TargetNote:
		note, err := t.GetNote(targetID)
		if err != nil {
			return err
		}
		if !note.RemoveLabel(labelID) {
			return fmt.Errorf("%w: label %s is not attached to note %s", ErrAssociation, labelID, targetID)
		}
		note.Touch()
		_, err = t.Notes.Save(note)
		return err
	default:
		return fmt.Errorf("%w: unknown target kind %q", ErrValidation, kind)
	}
}

// DeleteLabel deletes a label, first removing its id from every task and
// note that carries it. The scan-and-update phase runs before the label
// record itself is deleted, so a failure partway leaves the label in place.
func (t *Tracker) DeleteLabel(labelID string) (bool, error) {
	if labelID == "" {
		return false, fmt.Errorf("%w: identifier cannot be empty", ErrValidation)
	}
	for _, task := range t.Tasks.FindAll() {
		if task.RemoveLabel(labelID) {
			if _, err := t.Tasks.Save(task); err != nil {
				return false, err
			}
		}
	}
	for _, note := range t.Notes.FindAll() {
		if note.RemoveLabel(labelID) {
			note.Touch()
			if _, err := t.Notes.Save(note); err != nil {
				return false, err
			}
		}
	}
	return t.Labels.DeleteByID(labelID)
}

// TasksByLabel returns every task carrying the given label id. This is a
// linear scan; labels keep no back-references.
func (t *Tracker) TasksByLabel(labelID string) ([]models.Task, error) {
	if labelID == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", ErrValidation)
	}
	var out []models.Task
	for _, task := range t.Tasks.FindAll() {
		for _, id := range task.LabelIDs {
			if id == labelID {
				out = append(out, task)
				break
			}
		}
	}
	return out, nil
}

// NotesByLabel returns every note carrying the given label id.
func (t *Tracker) NotesByLabel(labelID string) ([]models.Note, error) {
	if labelID == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", ErrValidation)
	}
	var out []models.Note
	for _, note := range t.Notes.FindAll() {
		for _, id := range note.LabelIDs {
			if id == labelID {
				out = append(out, note)
				break
			}
		}
	}
	return out, nil
}
