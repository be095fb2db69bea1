package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rolodexhq/rolodex-backend/pkg/db"
	"github.com/rolodexhq/rolodex-backend/pkg/db/models"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	require.NoError(t, gdb.Exec("DELETE FROM users").Error)

	return gdb
}

func TestRepositoryCreateAndFind(t *testing.T) {
	gdb := setupUsersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Username:     "homer",
		Email:        "homer@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotEqual(t, created.ID.String(), "00000000-0000-0000-0000-000000000000")

	byEmail, err := repo.FindByEmail(ctx, "homer@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "homer", byEmail.Username)

	byUsername, err := repo.FindByUsername(ctx, "homer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "homer@example.com", byID.Email)
}

func TestRepositoryFindMissingReturnsNotFound(t *testing.T) {
	gdb := setupUsersTestDB(t)
	repo := NewRepository(gdb)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDuplicateEmailRejected(t *testing.T) {
	gdb := setupUsersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{Username: "homer", Email: "homer@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{Username: "other", Email: "homer@example.com", PasswordHash: "hash"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestRepositoryUpdateAppliesOnlySetFields(t *testing.T) {
	gdb := setupUsersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "homer", Email: "homer@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	newEmail := "homer.simpson@example.com"
	updated, err := repo.Update(ctx, created.ID, UpdateUserDTO{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, "homer", updated.Username)
	assert.Equal(t, "hash", updated.PasswordHash)
}

func TestRepositoryUpdateLastLogin(t *testing.T) {
	gdb := setupUsersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "homer", Email: "homer@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.Nil(t, created.LastLoginAt)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, at))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLoginAt)
	assert.WithinDuration(t, at, *reloaded.LastLoginAt, time.Second)
}
