package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roozbehk/tasktrack-be/internal/services"
	"github.com/roozbehk/tasktrack-be/internal/validation"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
	rules   *validation.Rules
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, rules *validation.Rules) *UserHandler {
	return &UserHandler{service: service, rules: rules}
}

// GetOrCreate returns the user with the username in the path, creating
// it on first use. 201 signals a fresh user, 200 an existing one.
func (h *UserHandler) GetOrCreate(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if errs := h.rules.ValidateUsername(username); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, created, err := h.service.GetOrCreateUser(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to get or create user")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(user)
}
