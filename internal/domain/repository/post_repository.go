package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post does not exist in the store.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll retrieves every post, newest first.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies the title and content of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post. Its comments are removed by the store's
	// cascade rule, not by application code.
	Delete(ctx context.Context, id uuid.UUID) error
}
