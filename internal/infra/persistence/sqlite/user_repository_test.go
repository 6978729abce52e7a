package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"credence/config"
	"credence/internal/domain/entity"
	"credence/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return db
}

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Name:         "Alice",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID, "store must assign the surrogate key")

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, "hashed", found.PasswordHash)
	assert.Equal(t, "Alice", found.Name)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entity.User{Email: "dup@x.com", PasswordHash: "hash-one", Name: "A"}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.User{Email: "dup@x.com", PasswordHash: "hash-two", Name: "B"}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	// The first writer wins: still exactly one row, with the first hash.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-one", found.PasswordHash)
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "h"}))
	require.NoError(t, repo.Create(ctx, &entity.User{Email: "b@x.com", PasswordHash: "h"}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
