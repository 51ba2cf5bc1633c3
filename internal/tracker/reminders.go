package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateReminder creates a reminder pointing at an existing task or note.
// The target must exist at creation time; the tracker does not re-validate
// the reference afterwards, so a reminder can outlive its target.
func (t *Tracker) CreateReminder(message string, at time.Time, target models.ReminderTarget) (models.Reminder, error) {
	if strings.TrimSpace(message) == "" {
		return models.Reminder{}, fmt.Errorf("%w: reminder message cannot be empty", ErrValidation)
	}
	if at.IsZero() {
		return models.Reminder{}, fmt.Errorf("%w: reminder time cannot be empty", ErrValidation)
	}
	switch target.Kind {
	case models.TargetTask:
		if _, err := t.GetTask(target.ID); err != nil {
			return models.Reminder{}, err
		}
	case models.TargetNote:
		if _, err := t.GetNote(target.ID); err != nil {
			return models.Reminder{}, err
		}
	default:
		return models.Reminder{}, fmt.Errorf("%w: unknown target kind %q", ErrValidation, target.Kind)
	}
	reminder := models.Reminder{
		ID:           t.ids.NewID(),
		Message:      message,
		ReminderTime: at,
		Target:       target,
	}
	return t.Reminders.Save(reminder)
}

// GetReminder returns the reminder with the given id.
func (t *Tracker) GetReminder(id string) (models.Reminder, error) {
	reminder, ok, err := t.Reminders.FindByID(id)
	if err != nil {
		return models.Reminder{}, err
	}
	if !ok {
		return models.Reminder{}, fmt.Errorf("%w: reminder %s", ErrNotFound, id)
	}
	return reminder, nil
}

// ListReminders returns all reminders, in no particular order.
func (t *Tracker) ListReminders() []models.Reminder {
	return t.Reminders.FindAll()
}

// DueReminders returns every non-dismissed reminder whose time is at or
// before asOf. Full scan; the working set is assumed small.
func (t *Tracker) DueReminders(asOf time.Time) []models.Reminder {
	var out []models.Reminder
	for _, reminder := range t.Reminders.FindAll() {
		if reminder.DueBy(asOf) {
			out = append(out, reminder)
		}
	}
	return out
}

// UpdateReminderMessage changes a reminder's message.
func (t *Tracker) UpdateReminderMessage(id, message string) (models.Reminder, error) {
	if strings.TrimSpace(message) == "" {
		return models.Reminder{}, fmt.Errorf("%w: reminder message cannot be empty", ErrValidation)
	}
	reminder, err := t.GetReminder(id)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.Message = message
	return t.Reminders.Save(reminder)
}

// UpdateReminderTime changes a reminder's scheduled time.
func (t *Tracker) UpdateReminderTime(id string, at time.Time) (models.Reminder, error) {
	if at.IsZero() {
		return models.Reminder{}, fmt.Errorf("%w: reminder time cannot be empty", ErrValidation)
	}
	reminder, err := t.GetReminder(id)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.ReminderTime = at
	return t.Reminders.Save(reminder)
}

// DismissReminder marks a reminder dismissed. Dismissed reminders never show
// as due, regardless of their time.
func (t *Tracker) DismissReminder(id string) (models.Reminder, error) {
	reminder, err := t.GetReminder(id)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.Dismissed = true
	return t.Reminders.Save(reminder)
}

// DeleteReminder removes a reminder.
func (t *Tracker) DeleteReminder(id string) (bool, error) {
	return t.Reminders.DeleteByID(id)
}
