package models

// Task is a unit of work owned by one user. UserID carries the owning
// user's id and is serialized as "user" on the wire.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	UserID      string `json:"user"`
}
