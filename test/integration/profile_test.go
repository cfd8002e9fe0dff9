//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go-blog-api/internal/model"
)

func TestProfileLifecycle(t *testing.T) {
	server := newTestServer(t)

	data := registerUser(t, server, "profile@x.com", "secret123", "Profile User")
	userID, _ := data.User["id"].(string)
	require.NotEmpty(t, userID)

	// Read the own profile.
	getResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/profile", nil, data.AccessToken)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	getEnvelope := decodeEnvelope(t, getResp)
	require.NotContains(t, string(getEnvelope.Data), "password")

	// Partial update: name only.
	name := "Renamed User"
	updateResp := doJSON(t, http.MethodPut, server.URL+"/api/v1/users/profile", model.UpdateProfileRequest{
		Name: &name,
	}, data.AccessToken)
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	var updated model.User
	updateEnvelope := decodeEnvelope(t, updateResp)
	require.NoError(t, json.Unmarshal(updateEnvelope.Data, &updated))
	require.Equal(t, "Renamed User", updated.Name)
	require.Equal(t, "profile@x.com", updated.Email)

	// Public lookup reflects the change.
	publicResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/"+userID, nil, "")
	require.Equal(t, http.StatusOK, publicResp.StatusCode)

	var public model.PublicUser
	publicEnvelope := decodeEnvelope(t, publicResp)
	require.NoError(t, json.Unmarshal(publicEnvelope.Data, &public))
	require.Equal(t, "Renamed User", public.Name)
	require.Equal(t, model.RoleUser, public.Role)
}

func TestProfileValidation(t *testing.T) {
	server := newTestServer(t)

	data := registerUser(t, server, "validate@x.com", "secret123", "Validate User")

	shortName := "a"
	resp := doJSON(t, http.MethodPut, server.URL+"/api/v1/users/profile", model.UpdateProfileRequest{
		Name: &shortName,
	}, data.AccessToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	require.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)

	longBio := strings.Repeat("x", 501)
	resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/users/profile", model.UpdateProfileRequest{
		Bio: &longBio,
	}, data.AccessToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	okBio := strings.Repeat("x", 500)
	resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/users/profile", model.UpdateProfileRequest{
		Bio: &okBio,
	}, data.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccountDeletion(t *testing.T) {
	server := newTestServer(t)

	data := registerUser(t, server, "gone@x.com", "secret123", "Gone User")
	userID, _ := data.User["id"].(string)

	deleteResp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/users/profile", nil, data.AccessToken)
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)

	cookie := sessionCookie(deleteResp)
	require.NotNil(t, cookie)
	require.Less(t, cookie.MaxAge, 0)

	// Login fails after deletion, and the public record is gone.
	loginResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", model.LoginRequest{
		Email:    "gone@x.com",
		Password: "secret123",
	}, "")
	require.Equal(t, http.StatusUnauthorized, loginResp.StatusCode)

	publicResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/"+userID, nil, "")
	require.Equal(t, http.StatusNotFound, publicResp.StatusCode)
}

func TestUnknownPublicUser(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/00000000-0000-0000-0000-000000000000", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestMalformedPublicUserID(t *testing.T) {
	server := newTestServer(t)

	// A garbage id is a 404, never a server error.
	resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/abc", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestPostPlaceholders(t *testing.T) {
	server := newTestServer(t)

	listResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/posts", nil, "")
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list model.PostList
	listEnvelope := decodeEnvelope(t, listResp)
	require.NoError(t, json.Unmarshal(listEnvelope.Data, &list))
	require.Empty(t, list.Posts)

	data := registerUser(t, server, "poster@x.com", "secret123", "Poster")
	myResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/posts/my-posts", nil, data.AccessToken)
	require.Equal(t, http.StatusOK, myResp.StatusCode)
}
