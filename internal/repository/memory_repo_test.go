package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-blog-api/internal/model"
)

func TestMemoryRepositoryDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	first := model.User{ID: "id-1", Email: "a@x.com", Name: "A", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, first))

	// Same address, different case: the store behaves like the unique index.
	second := model.User{ID: "id-2", Email: "A@X.com", Name: "B", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, repo.Create(ctx, second), model.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	require.Equal(t, "id-1", found.ID)
}

func TestMemoryRepositoryLifecycle(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.FindByID(ctx, "missing")
	require.ErrorIs(t, err, model.ErrUserNotFound)

	user := model.User{ID: "id-1", Email: "a@x.com", Name: "A", Bio: "bio", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "Updated"
	user.Bio = ""
	require.NoError(t, repo.UpdateProfile(ctx, user))

	found, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.Equal(t, "Updated", found.Name)
	require.Empty(t, found.Bio)

	require.NoError(t, repo.Delete(ctx, "id-1"))
	require.ErrorIs(t, repo.Delete(ctx, "id-1"), model.ErrUserNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
