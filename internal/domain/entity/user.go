// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Username and email are globally
// unique; the password is only ever held as a bcrypt digest.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned by the store.
	Username     string    // Unique login name, at least 4 characters.
	Email        string    // Unique email address, normalized to lowercase before storage.
	PasswordHash string    // bcrypt digest of the password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
