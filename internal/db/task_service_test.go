package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkov/taskdeck/internal/models"
)

func TestCreateAppliesDefaults(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Write report"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityP4, task.Priority)
	assert.Equal(t, models.CategoryInbox, task.Category)
	assert.Equal(t, 0, task.ActualDuration)
	assert.False(t, task.IsLocked)
	assert.Nil(t, task.CompletedAt)
}

func TestCreateKeepsExplicitFields(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	due := time.Now().Add(48 * time.Hour)
	estimate := 90
	task, err := tasks.Create(CreateTaskRequest{
		Title:             "Ship release",
		Priority:          models.PriorityP1,
		Category:          models.CategoryToday,
		DueDate:           &due,
		EstimatedDuration: &estimate,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityP1, task.Priority)
	assert.Equal(t, models.CategoryToday, task.Category)
	require.NotNil(t, task.DueDate)
	require.NotNil(t, task.EstimatedDuration)
	assert.Equal(t, 90, *task.EstimatedDuration)
}

func TestGetByIDMissingIsNotAnError(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	task, err := tasks.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Original", Priority: models.PriorityP2})
	require.NoError(t, err)

	title := "Renamed"
	status := models.StatusBlocked
	updated, err := tasks.Update(task.ID, TaskPatch{Title: &title, Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.StatusBlocked, updated.Status)
	assert.Equal(t, models.PriorityP2, updated.Priority) // untouched
	assert.Equal(t, models.CategoryInbox, updated.Category)
}

func TestUpdateEmptyPatchReturnsCurrentState(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Untouched"})
	require.NoError(t, err)

	same, err := tasks.Update(task.ID, TaskPatch{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, task.Title, same.Title)
	assert.Equal(t, task.Status, same.Status)
}

func TestUpdateMissingIDIsSilentNoop(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	title := "whatever"
	task, err := tasks.Update("no-such-id", TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestCompleteSetsDoneAndCountsOnce(t *testing.T) {
	_, tasks, _, analytics := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Finish me"})
	require.NoError(t, err)

	done, err := tasks.Complete(task.ID)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.Equal(t, models.StatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	// Completing again neither moves completed_at nor double-counts.
	again, err := tasks.Complete(task.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, first.Unix(), again.CompletedAt.Unix())

	rows, err := analytics.Daily(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TasksCompleted)
}

func TestDeleteCascadesToSubtasksAndSessions(t *testing.T) {
	gdb, tasks, _, _ := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Doomed"})
	require.NoError(t, err)
	_, err = tasks.AddSubtask(task.ID, "step one")
	require.NoError(t, err)
	_, err = tasks.AddSubtask(task.ID, "step two")
	require.NoError(t, err)

	end := time.Now()
	require.NoError(t, gdb.Create(&models.Session{
		TaskID:          task.ID,
		StartTime:       end.Add(-time.Minute),
		EndTime:         &end,
		DurationSeconds: 60,
	}).Error)

	require.NoError(t, tasks.Delete(task.ID))

	gone, err := tasks.GetByID(task.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var subtaskCount, sessionCount int64
	require.NoError(t, gdb.Model(&models.Subtask{}).Where("task_id = ?", task.ID).Count(&subtaskCount).Error)
	require.NoError(t, gdb.Model(&models.Session{}).Where("task_id = ?", task.ID).Count(&sessionCount).Error)
	assert.Zero(t, subtaskCount, "orphaned subtasks")
	assert.Zero(t, sessionCount, "orphaned sessions")
}

func TestReorderAssignsPositions(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	a, err := tasks.Create(CreateTaskRequest{Title: "A"})
	require.NoError(t, err)
	b, err := tasks.Create(CreateTaskRequest{Title: "B"})
	require.NoError(t, err)
	c, err := tasks.Create(CreateTaskRequest{Title: "C"})
	require.NoError(t, err)

	require.NoError(t, tasks.Reorder([]string{c.ID, a.ID, b.ID}))

	listed, err := tasks.List(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "C", listed[0].Title)
	assert.Equal(t, "A", listed[1].Title)
	assert.Equal(t, "B", listed[2].Title)
	assert.Equal(t, 0, listed[0].Position)
	assert.Equal(t, 1, listed[1].Position)
	assert.Equal(t, 2, listed[2].Position)

	// Unknown ids are tolerated without breaking the valid ones.
	require.NoError(t, tasks.Reorder([]string{"no-such-id", b.ID, c.ID, a.ID}))
	listed, err = tasks.List(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "B", listed[0].Title)
	assert.Equal(t, "C", listed[1].Title)
	assert.Equal(t, "A", listed[2].Title)
}

func TestListFiltersAndHydratesSubtasks(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	project := "project-1"
	inProject, err := tasks.Create(CreateTaskRequest{Title: "Scoped", ProjectID: &project})
	require.NoError(t, err)
	_, err = tasks.Create(CreateTaskRequest{Title: "Loose"})
	require.NoError(t, err)
	_, err = tasks.AddSubtask(inProject.ID, "nested step")
	require.NoError(t, err)

	byProject, err := tasks.List(TaskFilter{ProjectID: project})
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, "Scoped", byProject[0].Title)
	require.Len(t, byProject[0].Subtasks, 1)
	assert.Equal(t, "nested step", byProject[0].Subtasks[0].Title)

	done, err := tasks.List(TaskFilter{Status: models.StatusDone})
	require.NoError(t, err)
	assert.Empty(t, done)
}

func TestSubtaskLifecycle(t *testing.T) {
	_, tasks, _, _ := newTestServices(t)

	task, err := tasks.Create(CreateTaskRequest{Title: "Parent"})
	require.NoError(t, err)

	subs, err := tasks.AddSubtask(task.ID, "first")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.False(t, subs[0].IsCompleted)

	require.NoError(t, tasks.ToggleSubtask(subs[0].ID, true))
	subs, err = tasks.Subtasks(task.ID)
	require.NoError(t, err)
	assert.True(t, subs[0].IsCompleted)

	// Toggling is idempotent for the same desired state.
	require.NoError(t, tasks.ToggleSubtask(subs[0].ID, true))
	subs, err = tasks.Subtasks(task.ID)
	require.NoError(t, err)
	assert.True(t, subs[0].IsCompleted)

	require.NoError(t, tasks.DeleteSubtask(subs[0].ID))
	subs, err = tasks.Subtasks(task.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)

	// Subtask churn never touches the parent's own fields.
	parent, err := tasks.GetByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, parent.Status)
	assert.Equal(t, "Parent", parent.Title)
}
