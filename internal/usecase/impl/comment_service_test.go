package impl

import (
	"context"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentService(commentRepo *mockRepo.CommentRepository, postRepo *mockRepo.PostRepository) usecase.CommentUsecase {
	return NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestCommentService_Create(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	postID := uuid.New()

	postRepo.On("FindByID", ctx, postID).Return(&entity.Post{ID: postID}, nil)
	commentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Comment).ID = uuid.New()
		}).
		Return(nil)

	comment, err := service.Create(ctx, actor, &usecase.CreateCommentInput{
		Content: "Nice post",
		PostID:  postID,
	})
	require.NoError(t, err)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, actor.ID, comment.AuthorID)
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	postID := uuid.New()

	postRepo.On("FindByID", ctx, postID).Return(nil, repository.ErrPostNotFound)

	comment, err := service.Create(ctx, &entity.User{ID: uuid.New()}, &usecase.CreateCommentInput{
		Content: "Orphan",
		PostID:  postID,
	})
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Create_PostVanishedBeforeInsert(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	postID := uuid.New()

	postRepo.On("FindByID", ctx, postID).Return(&entity.Post{ID: postID}, nil)
	commentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Comment")).
		Return(repository.ErrPostReferenceInvalid)

	comment, err := service.Create(ctx, &entity.User{ID: uuid.New()}, &usecase.CreateCommentInput{
		Content: "Too late",
		PostID:  postID,
	})
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestCommentService_List_FiltersByPost(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	postID := uuid.New()
	expected := []*entity.Comment{{ID: uuid.New(), PostID: postID}}

	commentRepo.On("FindAll", ctx, &postID).Return(expected, nil)

	comments, err := service.List(ctx, &postID)
	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestCommentService_Update_DeniedForNonOwner(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	commentID := uuid.New()
	stored := &entity.Comment{ID: commentID, Content: "Mine", AuthorID: uuid.New()}

	commentRepo.On("FindByID", ctx, commentID).Return(stored, nil)

	comment, err := service.Update(ctx, &entity.User{ID: uuid.New()}, commentID, &usecase.UpdateCommentInput{
		Content: strPtr("Hijacked"),
	})
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentService_Delete_ByOwner(t *testing.T) {
	commentRepo := new(mockRepo.CommentRepository)
	postRepo := new(mockRepo.PostRepository)
	service := newCommentService(commentRepo, postRepo)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	commentID := uuid.New()
	stored := &entity.Comment{ID: commentID, AuthorID: actor.ID}

	commentRepo.On("FindByID", ctx, commentID).Return(stored, nil)
	commentRepo.On("Delete", ctx, commentID).Return(nil)

	require.NoError(t, service.Delete(ctx, actor, commentID))
	commentRepo.AssertExpectations(t)
}
