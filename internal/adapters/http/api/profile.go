// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"presenca/internal/domain/types"
)

// ProfileDependencies defines the interface for profile writes.
type ProfileDependencies interface {
	UpsertProfile(ctx context.Context, p types.Profile) error
}

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	deps ProfileDependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps ProfileDependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// profileRequest mirrors the wire schema for POST /profile/.
type profileRequest struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	TotalPresents int    `json:"total_presents"`
}

func (p profileRequest) validate() error {
	switch {
	case strings.TrimSpace(p.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(p.DisplayName) == "":
		return errors.New("missing display_name")
	case p.TotalPresents < 0:
		return errors.New("negative total_presents")
	}
	return nil
}

// HandleUpsertProfile handles POST /profile/ requests.
func (h *ProfileHandler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	err := h.deps.UpsertProfile(r.Context(), types.Profile{
		UserID:        req.UserID,
		DisplayName:   req.DisplayName,
		TotalPresents: req.TotalPresents,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "updated"})
}
