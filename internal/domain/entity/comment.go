package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment attached to a post. Deleting the post removes
// its comments through the store's cascade rule.
type Comment struct {
	ID        uuid.UUID
	Content   string
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}
