package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput carries a partial update. Nil fields keep the stored value.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// PostUsecase defines the interface for post business operations. Mutations
// take the acting user and enforce the ownership rule; reads are public.
type PostUsecase interface {
	Create(ctx context.Context, actor *entity.User, input *CreatePostInput) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
