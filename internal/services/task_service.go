package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/roozbehk/tasktrack-be/internal/models"
)

// TaskUpdate carries the fields of an update request. Completed is a
// pointer so a request that omits it can be told apart from one that
// explicitly sets it to false.
type TaskUpdate struct {
	Title       string
	Description string
	Completed   *bool
}

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	GetAllTasks() ([]models.Task, error)
	GetTasksByUser(userID string) ([]models.Task, error)
	GetTaskByID(id string) (models.Task, error)
	CreateTask(task models.Task) (models.Task, error)
	UpdateTask(id string, update TaskUpdate) (models.Task, error)
	ToggleTask(id string) (models.Task, error)
	DeleteTask(id string) error
}

// TaskService provides business logic for task management.
type TaskService struct {
	db *sql.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB) *TaskService {
	return &TaskService{db: db}
}

// scanTask is a helper to scan a task from a row or rows object.
func scanTask(scanner interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	err := scanner.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.UserID)
	return task, err
}

// GetAllTasks retrieves every task, in store order.
func (s *TaskService) GetAllTasks() ([]models.Task, error) {
	return s.queryTasks("SELECT id, title, description, completed, user_id FROM tasks")
}

// GetTasksByUser retrieves every task owned by the given user. A user
// with no tasks yields an empty slice, not an error.
func (s *TaskService) GetTasksByUser(userID string) ([]models.Task, error) {
	return s.queryTasks("SELECT id, title, description, completed, user_id FROM tasks WHERE user_id = ?", userID)
}

func (s *TaskService) queryTasks(query string, args ...interface{}) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetTaskByID retrieves a single task by its ID.
func (s *TaskService) GetTaskByID(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT id, title, description, completed, user_id FROM tasks WHERE id = ?", id)
	task, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

// CreateTask adds a new task to the database, assigning it a fresh ID.
func (s *TaskService) CreateTask(task models.Task) (models.Task, error) {
	task.ID = uuid.New().String()

	stmt, err := s.db.Prepare("INSERT INTO tasks(id, title, description, completed, user_id) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(task.ID, task.Title, task.Description, task.Completed, task.UserID)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to execute statement: %w", err)
	}
	return task, nil
}

// UpdateTask applies an update to an existing task. Empty title or
// description leave the stored value in place; Completed overwrites
// only when the request carried the field, false included. The owning
// user reference is never touched.
func (s *TaskService) UpdateTask(id string, update TaskUpdate) (models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return models.Task{}, err
	}

	if update.Title != "" {
		task.Title = update.Title
	}
	if update.Description != "" {
		task.Description = update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}

	stmt, err := s.db.Prepare("UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ?")
	if err != nil {
		return models.Task{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(task.Title, task.Description, task.Completed, task.ID); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completed flag on the identified task.
func (s *TaskService) ToggleTask(id string) (models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return models.Task{}, err
	}

	task.Completed = !task.Completed

	if _, err := s.db.Exec("UPDATE tasks SET completed = ? WHERE id = ?", task.Completed, task.ID); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task from the database.
func (s *TaskService) DeleteTask(id string) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
