package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go-blog-api/internal/model"
	"go-blog-api/internal/service"
	"go-blog-api/pkg/apierror"
)

type AuthHandler struct {
	service      *service.AuthService
	tokenTTL     time.Duration
	cookieSecure bool
}

func NewAuthHandler(service *service.AuthService, tokenTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: service, tokenTTL: tokenTTL, cookieSecure: cookieSecure}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookie(w, result.AccessToken, h.tokenTTL, h.cookieSecure)
	writeSuccess(w, http.StatusCreated, result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	result, err := h.service.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookie(w, result.AccessToken, h.tokenTTL, h.cookieSecure)
	writeSuccess(w, http.StatusOK, result)
}

// Logout is stateless on the server: the token stays valid until expiry, so
// all this does is clear the cookie and tell the client to discard its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cookieSecure)
	writeSuccess(w, http.StatusOK, model.MessageResponse{Message: "Logged out successfully"})
}
