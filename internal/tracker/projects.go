package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateProject creates a new project with PENDING status.
func (t *Tracker) CreateProject(name, description string) (models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return models.Project{}, fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	}
	now := time.Now()
	project := models.Project{
		ID:             t.ids.NewID(),
		Name:           name,
		Description:    description,
		Status:         models.StatusPending,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	return t.Projects.Save(project)
}

// GetProject returns the project with the given id.
func (t *Tracker) GetProject(id string) (models.Project, error) {
	project, ok, err := t.Projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}
	if !ok {
		return models.Project{}, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	return project, nil
}

// ListProjects returns all projects, in no particular order.
func (t *Tracker) ListProjects() []models.Project {
	return t.Projects.FindAll()
}

// UpdateProjectName changes a project's name and stamps its last-modified time.
func (t *Tracker) UpdateProjectName(id, name string) (models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return models.Project{}, fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	}
	project, err := t.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}
	project.Name = name
	project.Touch()
	return t.Projects.Save(project)
}

// UpdateProjectDescription changes a project's description and stamps its
// last-modified time.
func (t *Tracker) UpdateProjectDescription(id, description string) (models.Project, error) {
	project, err := t.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}
	project.Description = description
	project.Touch()
	return t.Projects.Save(project)
}

// UpdateProjectStatus changes a project's status. Any status may follow any
// other; there is no transition graph.
func (t *Tracker) UpdateProjectStatus(id string, status models.Status) (models.Project, error) {
	if !status.Valid() {
		return models.Project{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	project, err := t.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}
	project.Status = status
	project.Touch()
	return t.Projects.Save(project)
}

// AddTaskToProject adds a task to a project's task list. Both the project
// and the task must exist. Adding a task that is already a member is not an
// error; it returns false and leaves the project unchanged.
func (t *Tracker) AddTaskToProject(projectID, taskID string) (bool, error) {
	project, err := t.GetProject(projectID)
	if err != nil {
		return false, err
	}
	if _, err := t.GetTask(taskID); err != nil {
		return false, err
	}
	if !project.AddTask(taskID) {
		return false, nil
	}
	project.Touch()
	if _, err := t.Projects.Save(project); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveTaskFromProject removes a task from a project's task list. Removing
// a task that is not a member fails with ErrAssociation and leaves the
// project unchanged. This is stricter than AddTaskToProject on purpose; the
// asymmetry is documented behavior.
func (t *Tracker) RemoveTaskFromProject(projectID, taskID string) error {
	project, err := t.GetProject(projectID)
	if err != nil {
		return err
	}
	if !project.RemoveTask(taskID) {
		return fmt.Errorf("%w: task %s is not in project %s", ErrAssociation, taskID, projectID)
	}
	project.Touch()
	_, err = t.Projects.Save(project)
	return err
}

// TasksInProject resolves a project's task list into full task objects.
// Identifiers that no longer resolve in the task store are silently dropped;
// deleting a task does not cascade into projects that reference it.
func (t *Tracker) TasksInProject(projectID string) ([]models.Task, error) {
	project, err := t.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	var out []models.Task
	for _, taskID := range project.TaskIDs {
		task, ok, err := t.Tasks.FindByID(taskID)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, task)
		}
	}
	return out, nil
}

// DeleteProject removes a project. Its tasks are left in place.
func (t *Tracker) DeleteProject(id string) (bool, error) {
	return t.Projects.DeleteByID(id)
}
