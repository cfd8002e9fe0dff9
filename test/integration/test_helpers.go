//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-blog-api/internal/config"
	"go-blog-api/internal/handler"
	"go-blog-api/internal/middleware"
	"go-blog-api/internal/model"
	"go-blog-api/internal/repository"
	"go-blog-api/internal/router"
	"go-blog-api/internal/service"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type authData struct {
	User        map[string]any `json:"user"`
	AccessToken string         `json:"access_token"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	store := repository.NewMemoryUserRepository()
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)
	authService := service.NewAuthService(store, tokenService)
	userService := service.NewUserService(store)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	authHandler := handler.NewAuthHandler(authService, tokenService.TTL(), cfg.CookieSecure)
	userHandler := handler.NewUserHandler(userService, cfg.CookieSecure)
	postHandler := handler.NewPostHandler()

	health := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	server := httptest.NewServer(router.New(cfg, authMiddleware, router.Handlers{
		Auth: authHandler,
		User: userHandler,
		Post: postHandler,
	}, health))
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method string, url string, payload any, accessToken string) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) apiEnvelope {
	t.Helper()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func registerUser(t *testing.T, server *httptest.Server, email string, password string, name string) authData {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register", model.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)

	var data authData
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.NotEmpty(t, data.AccessToken)

	return data
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}
	return nil
}
