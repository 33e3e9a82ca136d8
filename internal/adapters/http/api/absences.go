// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"presenca/internal/domain/absence"
)

// AbsenceDependencies defines the interface for absence operations.
type AbsenceDependencies interface {
	AbsencesByUser(ctx context.Context, userID string) ([]absence.Log, error)
	AddAbsence(ctx context.Context, l absence.Log) (bool, error)
	RemoveAbsence(ctx context.Context, id string) error
}

// AbsencesHandler handles absence requests.
type AbsencesHandler struct {
	deps AbsenceDependencies
}

// NewAbsencesHandler creates a new absences handler.
func NewAbsencesHandler(deps AbsenceDependencies) *AbsencesHandler {
	return &AbsencesHandler{deps: deps}
}

// HandleAbsences dispatches by method:
// GET /absences/{user_id}, POST /absences/, DELETE /absences/{absence_id}.
func (h *AbsencesHandler) HandleAbsences(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/absences/")

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, rest)
	case http.MethodPost:
		if rest != "" {
			http.NotFound(w, r)
			return
		}
		h.handleCreate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r, rest)
	default:
		http.NotFound(w, r)
	}
}

func (h *AbsencesHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	logs, err := h.deps.AbsencesByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *AbsencesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req absenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	created, err := h.deps.AddAbsence(r.Context(), absence.Log{
		ID:        req.ID,
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, statusResponse{Status: "exists"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "saved"})
}

func (h *AbsencesHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.RemoveAbsence(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
