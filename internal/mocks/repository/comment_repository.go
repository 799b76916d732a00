package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CommentRepository is a mock implementation of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if comment, ok := args.Get(0).(*entity.Comment); ok {
		return comment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentRepository) FindAll(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if comments, ok := args.Get(0).([]*entity.Comment); ok {
		return comments, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *CommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
