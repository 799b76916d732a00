package repository

import (
	"context"

	domainrepo "blog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock
}

func (m *RepositoryFactory) UserRepo() domainrepo.UserRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.UserRepository)
}

func (m *RepositoryFactory) PostRepo() domainrepo.PostRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.PostRepository)
}

func (m *RepositoryFactory) CommentRepo() domainrepo.CommentRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.CommentRepository)
}

// TransactionManager is a mock implementation of
// repository.TransactionManager. Execute runs the callback against the
// configured factory so tests exercise the real transactional flow.
type TransactionManager struct {
	mock.Mock

	Factory domainrepo.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}
