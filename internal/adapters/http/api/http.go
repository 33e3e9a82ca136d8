// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"presenca/internal/adapters/repository"
	"presenca/internal/domain/absence"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the store implementation.
type Dependencies interface {
	repository.Store
}

// Server wires HTTP routes for the attendance API.
type Server struct {
	statusHandler   *StatusHandler
	healthHandler   *HealthHandler
	absencesHandler *AbsencesHandler
	rankingHandler  *RankingHandler
	profileHandler  *ProfileHandler
	usersHandler    *UsersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		statusHandler:   NewStatusHandler(),
		healthHandler:   NewHealthHandler(),
		absencesHandler: NewAbsencesHandler(deps),
		rankingHandler:  NewRankingHandler(deps),
		profileHandler:  NewProfileHandler(deps),
		usersHandler:    NewUsersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/absences/", MetricsMiddleware(s.absencesHandler.HandleAbsences, "absences"))
	mux.HandleFunc("/ranking/", MetricsMiddleware(s.rankingHandler.HandleGetRanking, "ranking"))
	mux.HandleFunc("/profile/", MetricsMiddleware(s.profileHandler.HandleUpsertProfile, "profile"))
	mux.HandleFunc("/user/", MetricsMiddleware(s.usersHandler.HandleGetUser, "user"))
	mux.HandleFunc("/register/", MetricsMiddleware(s.usersHandler.HandleRegister, "register"))
	mux.HandleFunc("/", MetricsMiddleware(s.statusHandler.HandleRoot, "root"))
}

// absenceRequest mirrors the wire schema for POST /absences/.
type absenceRequest struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	SubjectID string `json:"subject_id"`
	Date      string `json:"date"`
}

func (a absenceRequest) validate() error {
	switch {
	case strings.TrimSpace(a.ID) == "":
		return errors.New("missing id")
	case strings.TrimSpace(a.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(a.SubjectID) == "":
		return errors.New("missing subject_id")
	case strings.TrimSpace(a.Date) == "":
		return errors.New("missing date")
	}
	if _, err := time.Parse(absence.DateLayout, a.Date); err != nil {
		return errors.New("invalid date; must be YYYY-MM-DD")
	}
	return nil
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
