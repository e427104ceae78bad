package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roozbehk/tasktrack-be/internal/models"
	"github.com/roozbehk/tasktrack-be/internal/services"
	"github.com/roozbehk/tasktrack-be/internal/validation"
	"github.com/rs/zerolog/log"
)

// TaskHandler handles HTTP requests related to tasks.
type TaskHandler struct {
	tasks services.TaskServiceProvider
	users services.UserServiceProvider
	rules *validation.Rules
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks services.TaskServiceProvider, users services.UserServiceProvider, rules *validation.Rules) *TaskHandler {
	return &TaskHandler{tasks: tasks, users: users, rules: rules}
}

// TaskPayload defines the structure for create and update requests.
// Completed stays raw so the validation layer can type-check it while
// still collecting failures on the other fields.
type TaskPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Completed   json.RawMessage `json:"completed"`
	UserID      string          `json:"userId"`
}

// completedValue decodes the raw completed field into a pointer, nil
// when the field was absent or not a boolean. Validation has already
// rejected non-boolean values by the time handlers call this.
func completedValue(raw json.RawMessage) *bool {
	if len(raw) == 0 {
		return nil
	}
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return b
}

// writeValidationErrors responds with the collected field errors.
func writeValidationErrors(w http.ResponseWriter, errs validation.Errors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]validation.Errors{"errors": errs})
}

// GetAll handles the request to get all tasks.
func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAllTasks()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve tasks")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// GetByUser handles the request to get all tasks owned by a user.
func (h *TaskHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	tasks, err := h.tasks.GetTasksByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve tasks for user")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// Get handles the request to get a single task by its ID.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	task, err := h.tasks.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id).Msg("Failed to retrieve task")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// Create handles the request to create a new task. The task's owner is
// resolved before anything is written; an unknown userId creates nothing.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := h.rules.ValidateTask(payload.Title, payload.Description, payload.Completed); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.users.GetUserByID(payload.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("Failed to resolve task owner")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	completed := false
	if v := completedValue(payload.Completed); v != nil {
		completed = *v
	}

	task, err := h.tasks.CreateTask(models.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   completed,
		UserID:      user.ID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create task")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

// Update handles the request to update an existing task.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := h.rules.ValidateTask(payload.Title, payload.Description, payload.Completed); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	update := services.TaskUpdate{
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   completedValue(payload.Completed),
	}

	task, err := h.tasks.UpdateTask(id, update)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id).Msg("Failed to update task")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// Toggle handles the request to flip a task's completed flag.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	task, err := h.tasks.ToggleTask(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id).Msg("Failed to toggle task")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// Delete handles the request to delete a task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.tasks.DeleteTask(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id).Msg("Failed to delete task")
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
