package validation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError reports a single failed rule on a named request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the collected result of running a rule set over a request.
// All rules run; failures are accumulated rather than short-circuited.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Rules applies the fixed validation rule set using a message catalog.
type Rules struct {
	messages Messages
}

// ForLocale returns rules bound to the message catalog for the locale.
func ForLocale(locale string) *Rules {
	return &Rules{messages: MessagesForLocale(locale)}
}

// NewRules returns rules bound to an explicit message catalog.
func NewRules(messages Messages) *Rules {
	return &Rules{messages: messages}
}

// ValidateTask checks the task rule set: title and description must be
// non-empty, and completed, when present in the request body, must be a
// JSON boolean. The raw completed bytes are inspected instead of a
// decoded value so that a wrong type still lets the other rules run.
func (r *Rules) ValidateTask(title, description string, completed json.RawMessage) Errors {
	var errs Errors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: r.messages.TitleRequired})
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: r.messages.DescriptionRequired})
	}
	if len(completed) > 0 && !isJSONBool(completed) {
		errs = append(errs, FieldError{Field: "completed", Message: r.messages.CompletedBoolean})
	}

	return errs
}

// ValidateUsername checks that a username is a non-empty string.
func (r *Rules) ValidateUsername(username string) Errors {
	if strings.TrimSpace(username) == "" {
		return Errors{{Field: "username", Message: r.messages.UsernameRequired}}
	}
	return nil
}

func isJSONBool(raw json.RawMessage) bool {
	// Unmarshaling null into a plain bool is a no-op with a nil error,
	// so decode through a pointer and require it to be set.
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b != nil
}
