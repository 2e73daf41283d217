package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

func TestGrantGlobalAdminRequiresSuperuser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com", false)
	target := createUser(t, db, "target@example.com", false)

	err := GrantGlobalAdmin(db, user, target.ID)
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))
}

func TestGrantGlobalAdmin(t *testing.T) {
	db := newTestDB(t)
	su := createUser(t, db, "root@example.com", true)
	target := createUser(t, db, "target@example.com", false)

	// the target has no worker row yet, one is created unaffiliated
	require.NoError(t, GrantGlobalAdmin(db, su, target.ID))

	worker, err := crud.GetWorkerByUserID(db, target.ID)
	require.NoError(t, err)
	require.NotNil(t, worker)
	assert.Nil(t, worker.TeamID)
	assert.Equal(t, models.RoleAdmin, worker.RoleInTeam)

	// a floating admin may create teams
	ok, err := utils.CanCreateTeam(db, target)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGrantGlobalAdminKeepsTeamBinding(t *testing.T) {
	db := newTestDB(t)
	su := createUser(t, db, "root@example.com", true)
	admin := createUser(t, db, "admin@example.com", false)
	member := createUser(t, db, "member@example.com", false)
	team := seedTeam(t, db, "ALPHA", admin)
	_, err := AddMember(db, admin, team.ID, member.ID, models.RoleEmployee)
	require.NoError(t, err)

	require.NoError(t, GrantGlobalAdmin(db, su, member.ID))

	worker, err := crud.GetWorkerByUserID(db, member.ID)
	require.NoError(t, err)
	require.NotNil(t, worker.TeamID)
	assert.Equal(t, team.ID, *worker.TeamID)
	assert.Equal(t, models.RoleAdmin, worker.RoleInTeam)
}

func TestDemotedGlobalAdminLosesTeamCreation(t *testing.T) {
	db := newTestDB(t)
	su := createUser(t, db, "root@example.com", true)
	target := createUser(t, db, "target@example.com", false)

	require.NoError(t, GrantGlobalAdmin(db, su, target.ID))

	ok, err := utils.CanCreateTeam(db, target)
	require.NoError(t, err)
	require.True(t, ok)

	// demote the floating worker back to employee
	worker, err := crud.GetWorkerByUserID(db, target.ID)
	require.NoError(t, err)
	worker.RoleInTeam = models.RoleEmployee
	require.NoError(t, crud.SaveWorker(db, worker))

	// capability is re-derived from current rows, so it is gone at once
	ok, err = utils.CanCreateTeam(db, target)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CreateTeam(db, target, "Alpha", "ALPHA")
	require.Error(t, err)
	assert.True(t, utils.IsForbidden(err))
}
