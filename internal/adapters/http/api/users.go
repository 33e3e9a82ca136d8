// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"presenca/internal/adapters/repository"
	"presenca/internal/domain/types"
)

// UserDependencies defines the interface for user lookups and registration.
type UserDependencies interface {
	User(ctx context.Context, userID string) (types.Profile, error)
	Register(ctx context.Context, userID string) (bool, error)
}

// UsersHandler handles user lookup and registration requests.
type UsersHandler struct {
	deps UserDependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps UserDependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

// userResponse mirrors the wire schema for GET /user/{user_id}.
type userResponse struct {
	Exists bool           `json:"exists"`
	User   *types.Profile `json:"user,omitempty"`
}

// HandleGetUser handles GET /user/{user_id} requests.
func (h *UsersHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/user/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	p, err := h.deps.User(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusOK, userResponse{Exists: false})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{Exists: true, User: &p})
}

// HandleRegister handles POST /register/{user_id} requests.
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/register/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	created, err := h.deps.Register(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, statusResponse{Status: "exists", Message: "username already taken"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "created"})
}
