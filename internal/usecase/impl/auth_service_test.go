package impl

import (
	"context"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	txManager *mockRepo.TransactionManager
	txRepo    *mockRepo.UserRepository
	userRepo  *mockRepo.UserRepository
	hasher    *mockSvc.PasswordHasher
	tokenSvc  *mockSvc.TokenService
	service   usecase.AuthUsecase
}

func newAuthServiceFixture() *authServiceFixture {
	txRepo := new(mockRepo.UserRepository)
	factory := new(mockRepo.RepositoryFactory)
	factory.On("UserRepo").Return(txRepo)

	txManager := &mockRepo.TransactionManager{Factory: factory}
	userRepo := new(mockRepo.UserRepository)
	hasher := new(mockSvc.PasswordHasher)
	tokenSvc := new(mockSvc.TokenService)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixture{
		txManager: txManager,
		txRepo:    txRepo,
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		service:   service,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "Valid123").Return("$2a$hash", nil)
	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.txRepo.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.txRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Valid123",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "$2a$hash", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	f := newAuthServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "Valid123").Return("$2a$hash", nil)
	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.txRepo.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Valid123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	f := newAuthServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "Valid123").Return("$2a$hash", nil)
	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.txRepo.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.txRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Valid123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "$2a$hash"}

	f.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	f.hasher.On("Check", "Valid123", "$2a$hash").Return(true)
	f.tokenSvc.On("Generate", userID).Return("signed-token", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "Valid123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := newAuthServiceFixture()
	unknown.userRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "Valid123",
	})

	wrongPassword := newAuthServiceFixture()
	wrongPassword.userRepo.On("FindByUsername", ctx, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$hash"}, nil)
	wrongPassword.hasher.On("Check", "WrongPass1", "$2a$hash").Return(false)

	_, wrongErr := wrongPassword.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "WrongPass1",
	})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
