package contact

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for visitor-supplied fields.
const (
	MaxNameLength    = 200
	MaxMessageLength = 5000
)

// Domain errors
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrInvalidEmail   = errors.New("email must contain '@'")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 200 characters")
	ErrMessageTooLong = errors.New("message cannot exceed 5000 characters")
)

// Message is a business enquiry submitted through the contact section.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ReceivedAt time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Body) == "" {
		return ErrEmptyMessage
	}
	if len(m.Body) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
