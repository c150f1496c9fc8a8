package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrWrongPassword indicates the wrong password for the given customer.
	ErrWrongPassword = errors.New("wrong password")
	// ErrCredentialNotFound indicates that no credential is stored for the customer.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrInvalidSecret indicates a replacement secret that violates the
	// secret rules.
	ErrInvalidSecret = errors.New("secret must be 8 characters long and differ from the current one")
	// ErrSessionNotFound indicates that the session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrExpiredSession indicates that the session has expired.
	ErrExpiredSession = errors.New("session has expired")
)

// Session holds one logged-in customer session.
type Session struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
