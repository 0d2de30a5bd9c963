package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finapp-cl/finance-service/internal/middleware"
	"github.com/finapp-cl/finance-service/internal/repository"
	"github.com/finapp-cl/finance-service/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// ListGoals returns all goals of the authenticated user with their analyses
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goals, err := h.svc.GoalsWithAnalysis(userID)
	if err != nil {
		h.log.Errorf("Failed to list goals: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// GetGoal returns one goal with its analysis
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid goal id", http.StatusBadRequest)
		return
	}

	goal, err := h.svc.GoalWithAnalysis(userID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		http.Error(w, "Meta no encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Errorf("Failed to get goal %s: %v", goalID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// CreateGoal creates a goal for the authenticated user
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input service.CreateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.svc.CreateGoal(userID, input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// DeleteGoal removes a goal of the authenticated user
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid goal id", http.StatusBadRequest)
		return
	}

	err = h.svc.DeleteGoal(userID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		http.Error(w, "Meta no encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Errorf("Failed to delete goal %s: %v", goalID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
