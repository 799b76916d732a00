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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new comment by the actor on the referenced post. The
// post must exist at creation time.
func (srv *commentService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post for comment")
	}

	comment := &entity.Comment{
		Content:  input.Content,
		PostID:   input.PostID,
		AuthorID: actor.ID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		// The post vanished between the existence check and the insert.
		if errors.Is(err, repository.ErrPostReferenceInvalid) {
			return nil, domainerrors.ErrPostNotFound
		}

		srv.log(ctx).Error("Failed to create comment", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", comment.ID), slog.Any("postID", comment.PostID))

	return comment, nil
}

// List returns comments, optionally restricted to a single post.
func (srv *commentService) List(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindAll(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Get returns a single comment by ID.
func (srv *commentService) Get(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

// Update applies a partial update to a comment the actor owns.
func (srv *commentService) Update(ctx context.Context, actor *entity.User, commentID uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := srv.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actor.ID {
		srv.log(ctx).Warn("Comment update denied", slog.Any("commentID", commentID), slog.Any("actorID", actor.ID))

		return nil, domainerrors.ErrForbidden
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to update comment")
	}

	srv.log(ctx).Info("Comment updated", slog.Any("commentID", commentID))

	return comment, nil
}

// Delete removes a comment the actor owns.
func (srv *commentService) Delete(ctx context.Context, actor *entity.User, commentID uuid.UUID) error {
	comment, err := srv.Get(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actor.ID {
		srv.log(ctx).Warn("Comment delete denied", slog.Any("commentID", commentID), slog.Any("actorID", actor.ID))

		return domainerrors.ErrForbidden
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}
