package models

// User represents an account identified solely by a unique username.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
