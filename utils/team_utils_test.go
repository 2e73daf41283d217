package utils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crewdesk/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Team{}, &models.Worker{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, superuser bool) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", IsActive: true, IsSuperuser: superuser}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTeam(t *testing.T, db *gorm.DB, code string) *models.Team {
	t.Helper()
	team := &models.Team{Name: "Team " + code, Code: code}
	require.NoError(t, db.Create(team).Error)
	return team
}

func bindWorker(t *testing.T, db *gorm.DB, userID uint, teamID *uint, role models.TeamRole) *models.Worker {
	t.Helper()
	worker := &models.Worker{UserID: userID, TeamID: teamID, RoleInTeam: role}
	require.NoError(t, db.Create(worker).Error)
	return worker
}

func TestIsSuperuser(t *testing.T) {
	assert.True(t, IsSuperuser(&models.User{IsSuperuser: true}))
	assert.False(t, IsSuperuser(&models.User{}))
	assert.False(t, IsSuperuser(nil))
}

func TestIsTeamAdmin(t *testing.T) {
	db := newTestDB(t)
	team := createTeam(t, db, "ALPHA")
	other := createTeam(t, db, "BETA")

	admin := createUser(t, db, "admin@example.com", false)
	bindWorker(t, db, admin.ID, &team.ID, models.RoleAdmin)

	employee := createUser(t, db, "emp@example.com", false)
	bindWorker(t, db, employee.ID, &team.ID, models.RoleEmployee)

	ok, err := IsTeamAdmin(db, admin.ID, team.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// admin of one team is not admin of another
	ok, err = IsTeamAdmin(db, admin.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsTeamAdmin(db, employee.ID, team.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// no worker row at all
	ok, err = IsTeamAdmin(db, 9999, team.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

// The superuser flag and the worker role are independent signals: a
// superuser with no membership is not a team admin, but still passes the
// combined guard.
func TestSuperuserIsNotTeamAdmin(t *testing.T) {
	db := newTestDB(t)
	team := createTeam(t, db, "ALPHA")
	su := createUser(t, db, "root@example.com", true)

	ok, err := IsTeamAdmin(db, su.ID, team.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, RequireSuperuserOrTeamAdmin(db, su, team.ID))
}

func TestCanCreateTeam(t *testing.T) {
	db := newTestDB(t)
	team := createTeam(t, db, "ALPHA")

	su := createUser(t, db, "root@example.com", true)
	ok, err := CanCreateTeam(db, su)
	require.NoError(t, err)
	assert.True(t, ok, "superuser needs no worker row")

	// global admin: role admin, no team
	floating := createUser(t, db, "floating@example.com", false)
	bindWorker(t, db, floating.ID, nil, models.RoleAdmin)
	ok, err = CanCreateTeam(db, floating)
	require.NoError(t, err)
	assert.True(t, ok)

	// team-bound admin qualifies too
	local := createUser(t, db, "local@example.com", false)
	bindWorker(t, db, local.ID, &team.ID, models.RoleAdmin)
	ok, err = CanCreateTeam(db, local)
	require.NoError(t, err)
	assert.True(t, ok)

	employee := createUser(t, db, "emp@example.com", false)
	bindWorker(t, db, employee.ID, &team.ID, models.RoleEmployee)
	ok, err = CanCreateTeam(db, employee)
	require.NoError(t, err)
	assert.False(t, ok)

	nobody := createUser(t, db, "nobody@example.com", false)
	ok, err = CanCreateTeam(db, nobody)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequireMember(t *testing.T) {
	db := newTestDB(t)
	team := createTeam(t, db, "ALPHA")
	other := createTeam(t, db, "BETA")

	member := createUser(t, db, "member@example.com", false)
	bindWorker(t, db, member.ID, &team.ID, models.RoleEmployee)

	worker, err := RequireMember(db, member.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, worker.UserID)

	_, err = RequireMember(db, member.ID, other.ID)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))

	_, err = RequireMember(db, 9999, team.ID)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))

	// an unaffiliated worker is not a member of anything
	floating := createUser(t, db, "floating@example.com", false)
	bindWorker(t, db, floating.ID, nil, models.RoleAdmin)
	_, err = RequireMember(db, floating.ID, team.ID)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
}

func TestRequireSuperuserOrTeamAdmin(t *testing.T) {
	db := newTestDB(t)
	team := createTeam(t, db, "ALPHA")

	admin := createUser(t, db, "admin@example.com", false)
	bindWorker(t, db, admin.ID, &team.ID, models.RoleAdmin)
	require.NoError(t, RequireSuperuserOrTeamAdmin(db, admin, team.ID))

	manager := createUser(t, db, "manager@example.com", false)
	bindWorker(t, db, manager.ID, &team.ID, models.RoleManager)
	err := RequireSuperuserOrTeamAdmin(db, manager, team.ID)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
}

func TestEnsureWorkerExists(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com", false)

	first, err := EnsureWorkerExists(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, first.TeamID)
	assert.Equal(t, models.RoleEmployee, first.RoleInTeam)

	second, err := EnsureWorkerExists(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Worker{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
