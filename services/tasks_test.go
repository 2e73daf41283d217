package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

func TestCreateTaskRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	outsider := createUser(t, db, "out@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)

	_, err := CreateTask(db, outsider, team.ID, "Sneaky task", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))

	task, err := CreateTask(db, admin, team.ID, "Real task", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TaskOpen, task.Status)
	assert.Equal(t, admin.ID, task.AuthorID)
}

func TestCreateTaskAssigneeMustBeMember(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	outsider := createUser(t, db, "out@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)

	_, err := CreateTask(db, admin, team.ID, "Task", nil, &outsider.ID, nil)
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))
}

func TestUpdateTaskPermissions(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	author := createUser(t, db, "author@example.com", false)
	member := createUser(t, db, "member@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)
	_, err := AddMember(db, admin, team.ID, author.ID, models.RoleEmployee)
	require.NoError(t, err)
	_, err = AddMember(db, admin, team.ID, member.ID, models.RoleEmployee)
	require.NoError(t, err)

	task, err := CreateTask(db, author, team.ID, "Task", nil, nil, nil)
	require.NoError(t, err)

	status := models.TaskInProgress
	// a plain member who is not the author may not edit
	_, err = UpdateTask(db, member, task.ID, crud.TaskUpdate{Status: &status})
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))

	// the author may
	updated, err := UpdateTask(db, author, task.ID, crud.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, updated.Status)

	// so may the team admin
	done := models.TaskDone
	updated, err = UpdateTask(db, admin, task.ID, crud.TaskUpdate{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, models.TaskDone, updated.Status)
}

func TestDeleteTaskRemovesComments(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)

	task, err := CreateTask(db, admin, team.ID, "Task", nil, nil, nil)
	require.NoError(t, err)
	_, err = AddTaskComment(db, admin, task.ID, "first")
	require.NoError(t, err)
	_, err = AddTaskComment(db, admin, task.ID, "second")
	require.NoError(t, err)

	require.NoError(t, DeleteTask(db, admin, task.ID))

	_, err = GetTask(db, admin, task.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&models.TaskComment{}).Where("task_id = ?", task.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEvaluateTaskOnce(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	member := createUser(t, db, "member@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)
	_, err := AddMember(db, admin, team.ID, member.ID, models.RoleEmployee)
	require.NoError(t, err)

	task, err := CreateTask(db, admin, team.ID, "Task", nil, nil, nil)
	require.NoError(t, err)

	_, err = EvaluateTask(db, member, task.ID, 7, nil, nil, nil)
	require.NoError(t, err)

	_, err = EvaluateTask(db, member, task.ID, 9, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	evals, err := ListTaskEvaluations(db, admin, task.ID)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, 7, evals[0].Score)
}

func TestListTeamTasksRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", false)
	outsider := createUser(t, db, "out@example.com", false)
	su := createUser(t, db, "root@example.com", true)
	team := seedTeam(t, db, "ALPHA", admin)

	_, err := CreateTask(db, admin, team.ID, "Task", nil, nil, nil)
	require.NoError(t, err)

	_, err = ListTeamTasks(db, outsider, team.ID)
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))

	tasks, err := ListTeamTasks(db, su, team.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
