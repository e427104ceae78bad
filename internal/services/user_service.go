package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/roozbehk/tasktrack-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetOrCreateUser(username string) (models.User, bool, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetOrCreateUser returns the user with the given username, creating it
// first if no such user exists. The second return value reports whether
// a new user was created. Username uniqueness is enforced by the users
// table's UNIQUE constraint, so a concurrent duplicate insert fails at
// the store rather than producing two rows.
func (s *UserService) GetOrCreateUser(username string) (models.User, bool, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username)
	if err == nil {
		return user, false, nil
	}
	if err != sql.ErrNoRows {
		return models.User{}, false, err
	}

	user = models.User{
		ID:       uuid.New().String(),
		Username: username,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username) VALUES(?, ?)")
	if err != nil {
		return models.User{}, false, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(user.ID, user.Username); err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}
