package models

import "time"

// Priority represents the priority level of a task
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
	PriorityNone   Priority = "NONE"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// Status represents the status of a task or project
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// User represents a user of the tracker
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// EntityID returns the user's unique identifier.
func (u User) EntityID() string { return u.ID }

// Clone returns an independent copy of the user.
func (u User) Clone() User { return u }

// Task represents a single task in the system
type Task struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	LabelIDs    []string `json:"label_ids"`
}

// EntityID returns the task's unique identifier.
func (t Task) EntityID() string { return t.ID }

// Clone returns an independent copy of the task, including its label list.
func (t Task) Clone() Task {
	c := t
	c.LabelIDs = cloneIDs(t.LabelIDs)
	return c
}

// SetCompleted updates the completed flag and keeps the status enum
// consistent: completing a task marks it COMPLETED, un-completing a
// COMPLETED task reverts it to PENDING.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
	if completed {
		t.Status = StatusCompleted
	} else if t.Status == StatusCompleted {
		t.Status = StatusPending
	}
}

// SetStatus updates the status enum and keeps the completed flag consistent.
func (t *Task) SetStatus(status Status) {
	t.Status = status
	t.Completed = status == StatusCompleted
}

// AddLabel appends labelID to the task's label list. It returns false if the
// label is already attached, keeping the list free of duplicates.
func (t *Task) AddLabel(labelID string) bool {
	if containsID(t.LabelIDs, labelID) {
		return false
	}
	t.LabelIDs = append(t.LabelIDs, labelID)
	return true
}

// RemoveLabel removes labelID from the task's label list. It returns false
// if the label was not attached.
func (t *Task) RemoveLabel(labelID string) bool {
	filtered, removed := removeID(t.LabelIDs, labelID)
	t.LabelIDs = filtered
	return removed
}

// Note represents a free-form note
type Note struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
	LabelIDs       []string  `json:"label_ids"`
}

// EntityID returns the note's unique identifier.
func (n Note) EntityID() string { return n.ID }

// Clone returns an independent copy of the note, including its label list.
func (n Note) Clone() Note {
	c := n
	c.LabelIDs = cloneIDs(n.LabelIDs)
	return c
}

// Touch stamps the note's last-modified time.
func (n *Note) Touch() {
	n.LastModifiedAt = time.Now()
}

// AddLabel appends labelID to the note's label list. It returns false if the
// label is already attached.
func (n *Note) AddLabel(labelID string) bool {
	if containsID(n.LabelIDs, labelID) {
		return false
	}
	n.LabelIDs = append(n.LabelIDs, labelID)
	return true
}

// RemoveLabel removes labelID from the note's label list. It returns false
// if the label was not attached.
func (n *Note) RemoveLabel(labelID string) bool {
	filtered, removed := removeID(n.LabelIDs, labelID)
	n.LabelIDs = filtered
	return removed
}

// Project represents a project grouping tasks
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
	TaskIDs        []string  `json:"task_ids"`
}

// EntityID returns the project's unique identifier.
func (p Project) EntityID() string { return p.ID }

// Clone returns an independent copy of the project, including its task list.
func (p Project) Clone() Project {
	c := p
	c.TaskIDs = cloneIDs(p.TaskIDs)
	return c
}

// Touch stamps the project's last-modified time.
func (p *Project) Touch() {
	p.LastModifiedAt = time.Now()
}

// AddTask appends taskID to the project's task list. It returns false if the
// task is already a member.
func (p *Project) AddTask(taskID string) bool {
	if containsID(p.TaskIDs, taskID) {
		return false
	}
	p.TaskIDs = append(p.TaskIDs, taskID)
	return true
}

// RemoveTask removes taskID from the project's task list. It returns false
// if the task was not a member.
func (p *Project) RemoveTask(taskID string) bool {
	filtered, removed := removeID(p.TaskIDs, taskID)
	p.TaskIDs = filtered
	return removed
}

// Label represents a label that can be attached to tasks and notes
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntityID returns the label's unique identifier.
func (l Label) EntityID() string { return l.ID }

// Clone returns an independent copy of the label.
func (l Label) Clone() Label { return l }

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID filters id out of ids, preserving order. The second result
// reports whether anything was removed.
func removeID(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
