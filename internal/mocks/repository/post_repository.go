package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PostRepository is a mock implementation of repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*entity.Post); ok {
		return post, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*entity.Post); ok {
		return posts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
