package services

import "errors"

// Sentinel errors let handlers distinguish a missing entity from a
// failing store without matching on message text.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
)
