package tracker

import (
	"fmt"
	"strings"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateTask creates a new task with the given description and priority.
// New tasks start as PENDING and not completed. An empty priority defaults
// to NONE.
func (t *Tracker) CreateTask(description string, priority models.Priority) (models.Task, error) {
	if strings.TrimSpace(description) == "" {
		return models.Task{}, fmt.Errorf("%w: task description cannot be empty", ErrValidation)
	}
	if priority == "" {
		priority = models.PriorityNone
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}
	task := models.Task{
		ID:          t.ids.NewID(),
		Description: description,
		Completed:   false,
		Priority:    priority,
		Status:      models.StatusPending,
	}
	return t.Tasks.Save(task)
}

// GetTask returns the task with the given id.
func (t *Tracker) GetTask(id string) (models.Task, error) {
	task, ok, err := t.Tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}
	if !ok {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	return task, nil
}

// ListTasks returns all tasks, in no particular order.
func (t *Tracker) ListTasks() []models.Task {
	return t.Tasks.FindAll()
}

// TasksByStatus returns all tasks with the given status.
func (t *Tracker) TasksByStatus(status models.Status) ([]models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	var out []models.Task
	for _, task := range t.Tasks.FindAll() {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}

// TasksByPriority returns all tasks with the given priority.
func (t *Tracker) TasksByPriority(priority models.Priority) ([]models.Task, error) {
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}
	var out []models.Task
	for _, task := range t.Tasks.FindAll() {
		if task.Priority == priority {
			out = append(out, task)
		}
	}
	return out, nil
}

// UpdateTaskDescription changes a task's description.
func (t *Tracker) UpdateTaskDescription(id, description string) (models.Task, error) {
	if strings.TrimSpace(description) == "" {
		return models.Task{}, fmt.Errorf("%w: task description cannot be empty", ErrValidation)
	}
	task, err := t.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}
	task.Description = description
	return t.Tasks.Save(task)
}

// UpdateTaskPriority changes a task's priority.
func (t *Tracker) UpdateTaskPriority(id string, priority models.Priority) (models.Task, error) {
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}
	task, err := t.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}
	task.Priority = priority
	return t.Tasks.Save(task)
}

// UpdateTaskStatus changes a task's status. The completed flag is kept
// consistent: COMPLETED sets it, any other status clears it.
func (t *Tracker) UpdateTaskStatus(id string, status models.Status) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	task, err := t.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}
	task.SetStatus(status)
	return t.Tasks.Save(task)
}

// SetTaskCompleted changes a task's completed flag. The status enum is kept
// consistent: completing sets COMPLETED, un-completing a completed task
// reverts it to PENDING.
func (t *Tracker) SetTaskCompleted(id string, completed bool) (models.Task, error) {
	task, err := t.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}
	task.SetCompleted(completed)
	return t.Tasks.Save(task)
}

// DeleteTask removes a task. Projects and reminders referencing it are left
// untouched; their dangling references are filtered out at read time.
func (t *Tracker) DeleteTask(id string) (bool, error) {
	return t.Tasks.DeleteByID(id)
}
