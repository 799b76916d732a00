package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post authored by a user. Only the author may mutate it;
// anyone may read it. AuthorID is immutable after creation.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time // Touched by the store on every mutation.
}
