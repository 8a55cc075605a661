// Package domain defines the core entities for the support server.
package domain

import (
	"github.com/google/uuid"
)

// ClientSession represents an active client connection to the server.
type ClientSession struct {
	ID        string
	UserAgent string
	Connected bool
}

// NewClientSession creates a new ClientSession with a unique ID.
func NewClientSession(userAgent string) *ClientSession {
	return &ClientSession{
		ID:        uuid.New().String(),
		UserAgent: userAgent,
		Connected: true,
	}
}
