package domain

import "fmt"

// UnknownToolError indicates a tool call named a tool outside the fixed
// registry. It is the only failure a generator path can produce.
type UnknownToolError struct {
	Name string
}

// Error returns the error message.
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// NewUnknownToolError creates a new UnknownToolError.
func NewUnknownToolError(name string) *UnknownToolError {
	return &UnknownToolError{Name: name}
}

// SessionNotFoundError indicates that a requested support session was not
// found in the store.
type SessionNotFoundError struct {
	ID string
}

// Error returns the error message.
func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session with id %s not found", e.ID)
}

// NewSessionNotFoundError creates a new SessionNotFoundError.
func NewSessionNotFoundError(id string) *SessionNotFoundError {
	return &SessionNotFoundError{ID: id}
}
