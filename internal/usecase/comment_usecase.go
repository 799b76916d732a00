package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to create a comment.
type CreateCommentInput struct {
	Content string
	PostID  uuid.UUID
}

// UpdateCommentInput carries a partial update. A nil content keeps the stored value.
type UpdateCommentInput struct {
	Content *string
}

// CommentUsecase defines the interface for comment business operations.
// Same ownership rule as posts: only the author mutates, anyone reads.
type CommentUsecase interface {
	Create(ctx context.Context, actor *entity.User, input *CreateCommentInput) (*entity.Comment, error)
	List(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
