package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TargetKind identifies which entity type a reminder points at.
type TargetKind string

const (
	TargetTask TargetKind = "Task"
	TargetNote TargetKind = "Note"
)

// ReminderTarget is the reference a reminder holds to a task or note.
// Construct one with TaskTarget or NoteTarget; the zero value is invalid.
type ReminderTarget struct {
	Kind TargetKind
	ID   string
}

// TaskTarget returns a reminder target pointing at the task with the given id.
func TaskTarget(id string) ReminderTarget {
	return ReminderTarget{Kind: TargetTask, ID: id}
}

// NoteTarget returns a reminder target pointing at the note with the given id.
func NoteTarget(id string) ReminderTarget {
	return ReminderTarget{Kind: TargetNote, ID: id}
}

// Reminder represents a scheduled reminder linked to a task or note.
// The target association is immutable after creation.
type Reminder struct {
	ID           string
	Message      string
	ReminderTime time.Time
	Target       ReminderTarget
	Dismissed    bool
}

// EntityID returns the reminder's unique identifier.
func (r Reminder) EntityID() string { return r.ID }

// Clone returns an independent copy of the reminder.
func (r Reminder) Clone() Reminder { return r }

// DueBy reports whether the reminder is active and due at the given time.
func (r Reminder) DueBy(asOf time.Time) bool {
	return !r.Dismissed && !r.ReminderTime.After(asOf)
}

// reminderJSON is the wire form of a Reminder: the target is flattened into
// the associated_entity_id / associated_entity_type pair.
type reminderJSON struct {
	ID           string     `json:"id"`
	Message      string     `json:"message"`
	ReminderTime time.Time  `json:"reminder_time"`
	EntityID     string     `json:"associated_entity_id"`
	EntityType   TargetKind `json:"associated_entity_type"`
	Dismissed    bool       `json:"dismissed"`
}

// MarshalJSON implements json.Marshaler.
func (r Reminder) MarshalJSON() ([]byte, error) {
	return json.Marshal(reminderJSON{
		ID:           r.ID,
		Message:      r.Message,
		ReminderTime: r.ReminderTime,
		EntityID:     r.Target.ID,
		EntityType:   r.Target.Kind,
		Dismissed:    r.Dismissed,
	})
}

// UnmarshalJSON implements json.Unmarshaler. An unknown entity type is
// rejected so a decoded reminder can never hold an unrepresentable target.
func (r *Reminder) UnmarshalJSON(data []byte) error {
	var raw reminderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.EntityType {
	case TargetTask, TargetNote:
	default:
		return fmt.Errorf("reminder %s: unknown associated entity type %q", raw.ID, raw.EntityType)
	}
	r.ID = raw.ID
	r.Message = raw.Message
	r.ReminderTime = raw.ReminderTime
	r.Target = ReminderTarget{Kind: raw.EntityType, ID: raw.EntityID}
	r.Dismissed = raw.Dismissed
	return nil
}
