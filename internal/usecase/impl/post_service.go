package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post owned by the actor.
func (srv *postService) Create(ctx context.Context, actor *entity.User, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: actor.ID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("authorID", actor.ID))

	return post, nil
}

// List returns all posts, newest first.
func (srv *postService) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Get returns a single post by ID.
func (srv *postService) Get(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// Update applies a partial update to a post the actor owns. Omitted fields
// keep their stored values.
func (srv *postService) Update(ctx context.Context, actor *entity.User, postID uuid.UUID, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != actor.ID {
		srv.log(ctx).Warn("Post update denied", slog.Any("postID", postID), slog.Any("actorID", actor.ID))

		return nil, domainerrors.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", postID))

	return post, nil
}

// Delete removes a post the actor owns. Comments on the post are removed
// with it.
func (srv *postService) Delete(ctx context.Context, actor *entity.User, postID uuid.UUID) error {
	post, err := srv.Get(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actor.ID {
		srv.log(ctx).Warn("Post delete denied", slog.Any("postID", postID), slog.Any("actorID", actor.ID))

		return domainerrors.ErrForbidden
	}

	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}
