package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist in the store.
var ErrCommentNotFound = errors.New("comment not found")

// ErrPostReferenceInvalid is returned when a comment insert hits the foreign
// key constraint on posts, i.e. the referenced post does not exist.
var ErrPostReferenceInvalid = errors.New("referenced post does not exist")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindAll retrieves comments, optionally filtered by post. A nil postID
	// returns every comment.
	FindAll(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies the content of an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
