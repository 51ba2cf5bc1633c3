package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskSetCompletedCouplesStatus(t *testing.T) {
	task := Task{ID: "t1", Status: StatusPending}

	task.SetCompleted(true)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.True(t, task.Completed)

	task.SetCompleted(false)
	assert.Equal(t, StatusPending, task.Status, "un-completing a completed task reverts to pending")
	assert.False(t, task.Completed)
}

func TestTaskSetCompletedFalsePreservesNonCompletedStatus(t *testing.T) {
	task := Task{ID: "t1", Status: StatusInProgress}

	task.SetCompleted(false)
	assert.Equal(t, StatusInProgress, task.Status)
	assert.False(t, task.Completed)
}

func TestTaskSetStatusCouplesCompleted(t *testing.T) {
	task := Task{ID: "t1", Status: StatusPending}

	task.SetStatus(StatusCompleted)
	assert.True(t, task.Completed)

	task.SetStatus(StatusCancelled)
	assert.False(t, task.Completed)
}

func TestTaskCloneIsIndependent(t *testing.T) {
	task := Task{ID: "t1", LabelIDs: []string{"l1", "l2"}}

	clone := task.Clone()
	clone.LabelIDs[0] = "mutated"

	assert.Equal(t, []string{"l1", "l2"}, task.LabelIDs)
}

func TestAddRemoveLabel(t *testing.T) {
	task := Task{ID: "t1"}

	assert.True(t, task.AddLabel("l1"))
	assert.False(t, task.AddLabel("l1"), "duplicate attach is a no-op")
	assert.True(t, task.AddLabel("l2"))

	assert.True(t, task.RemoveLabel("l1"))
	assert.False(t, task.RemoveLabel("l1"), "label no longer attached")
	assert.Equal(t, []string{"l2"}, task.LabelIDs)
}

func TestRemoveTaskPreservesOrder(t *testing.T) {
	project := Project{ID: "p1", TaskIDs: []string{"t1", "t2", "t3"}}

	assert.True(t, project.RemoveTask("t2"))
	assert.Equal(t, []string{"t1", "t3"}, project.TaskIDs)
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.True(t, PriorityNone.Valid())
	assert.False(t, Priority("URGENT").Valid())
	assert.False(t, Priority("").Valid())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, Status("DONE").Valid())
	assert.False(t, Status("").Valid())
}
