package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one in-memory database per test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Worker{},
		&models.Task{},
		&models.TaskComment{},
		&models.Meeting{},
		&models.Evaluation{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, superuser bool) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", IsActive: true, IsSuperuser: superuser}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedTeam creates a team with the given admin member, bypassing the service
// guards, for tests that need an existing team to act on
func seedTeam(t *testing.T, db *gorm.DB, code string, admin *models.User) *models.Team {
	t.Helper()
	team, err := crud.CreateTeam(db, "Team "+code, code, &admin.ID)
	require.NoError(t, err)
	_, err = crud.CreateMembership(db, admin.ID, team.ID, models.RoleAdmin)
	require.NoError(t, err)
	return team
}
