package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-blog-api/internal/model"
	"go-blog-api/internal/repository"
	"go-blog-api/pkg/apierror"
)

func newUserFixture(t *testing.T) (*UserService, *AuthService, model.User) {
	t.Helper()

	store := repository.NewMemoryUserRepository()
	tokens, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	authSvc := NewAuthService(store, tokens)

	result, err := authSvc.Register(context.Background(), model.RegisterRequest{
		Email:    "profile@x.com",
		Password: "secret123",
		Name:     "Profile User",
		Bio:      "original bio",
		Avatar:   "https://example.com/a.png",
	})
	require.NoError(t, err)

	return NewUserService(store), authSvc, result.User
}

func strPtr(s string) *string { return &s }

func TestUpdateProfileNameValidation(t *testing.T) {
	t.Parallel()

	svc, _, user := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Name: strPtr(" a ")})
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "VALIDATION_ERROR", apiErr.Code)

	updated, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Name: strPtr(" ab ")})
	require.NoError(t, err)
	require.Equal(t, "ab", updated.Name)
}

func TestUpdateProfileBioBounds(t *testing.T) {
	t.Parallel()

	svc, _, user := newUserFixture(t)
	ctx := context.Background()

	tooLong := strings.Repeat("x", 501)
	_, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Bio: &tooLong})
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "VALIDATION_ERROR", apiErr.Code)

	atLimit := strings.Repeat("x", 500)
	updated, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Bio: &atLimit})
	require.NoError(t, err)
	require.Equal(t, atLimit, updated.Bio)
}

func TestUpdateProfilePartialMutation(t *testing.T) {
	t.Parallel()

	svc, _, user := newUserFixture(t)
	ctx := context.Background()

	// Only the name is supplied; bio and avatar must survive untouched.
	updated, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Name: strPtr("Renamed")})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "original bio", updated.Bio)
	require.Equal(t, "https://example.com/a.png", updated.Avatar)
	require.False(t, updated.UpdatedAt.Before(user.UpdatedAt))

	// Empty-string bio and avatar clear the stored values.
	updated, err = svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{
		Bio:    strPtr(""),
		Avatar: strPtr(""),
	})
	require.NoError(t, err)
	require.Empty(t, updated.Bio)
	require.Empty(t, updated.Avatar)
	require.Equal(t, "Renamed", updated.Name)
}

func TestUpdateProfileAvatarValidation(t *testing.T) {
	t.Parallel()

	svc, _, user := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Avatar: strPtr("not a url")})
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "VALIDATION_ERROR", apiErr.Code)

	updated, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Avatar: strPtr("https://example.com/new.png")})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/new.png", updated.Avatar)

	// Clearing with an empty string stays allowed.
	updated, err = svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Avatar: strPtr("")})
	require.NoError(t, err)
	require.Empty(t, updated.Avatar)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)

	_, err := svc.UpdateProfile(context.Background(), "missing-id", model.UpdateProfileRequest{Name: strPtr("New Name")})
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	svc, authSvc, user := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteAccount(ctx, user.ID))

	// Gone for good: login and public lookup both fail afterwards.
	_, err := authSvc.Login(ctx, model.LoginRequest{Email: user.Email, Password: "secret123"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.GetPublicUser(ctx, user.ID)
	require.ErrorIs(t, err, model.ErrUserNotFound)

	require.ErrorIs(t, svc.DeleteAccount(ctx, user.ID), model.ErrUserNotFound)
}

func TestGetPublicUserMalformedID(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	// A non-UUID id must surface as NotFound without ever hitting the store,
	// where binding it to the UUID column would fail as an encode error.
	for _, id := range []string{"abc", "1", "not-a-uuid", " "} {
		_, err := svc.GetPublicUser(ctx, id)
		require.ErrorIs(t, err, model.ErrUserNotFound, "id %q", id)
	}
}

func TestGetPublicUserSubset(t *testing.T) {
	t.Parallel()

	svc, _, user := newUserFixture(t)

	public, err := svc.GetPublicUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, public.ID)
	require.Equal(t, user.Email, public.Email)
	require.Equal(t, user.Name, public.Name)
	require.Equal(t, user.Role, public.Role)
}
