package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/internal/delivery/http/validator"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPostUsecase records whether the handler reached the usecase.
type stubPostUsecase struct {
	created *usecase.CreatePostInput
}

func (s *stubPostUsecase) Create(_ context.Context, _ *entity.User, input *usecase.CreatePostInput) (*entity.Post, error) {
	s.created = input

	return &entity.Post{ID: uuid.New(), Title: input.Title, Content: input.Content}, nil
}

func (s *stubPostUsecase) List(context.Context) ([]*entity.Post, error) { return nil, nil }

func (s *stubPostUsecase) Get(context.Context, uuid.UUID) (*entity.Post, error) { return nil, nil }

func (s *stubPostUsecase) Update(context.Context, *entity.User, uuid.UUID, *usecase.UpdatePostInput) (*entity.Post, error) {
	return nil, nil
}

func (s *stubPostUsecase) Delete(context.Context, *entity.User, uuid.UUID) error { return nil }

func newPostTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	v, err := validator.New()
	require.NoError(t, err)
	e.Validator = v

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPostHandler_Create_AcceptsTitleAtColumnLimit(t *testing.T) {
	stub := &stubPostUsecase{}
	h := NewPostHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	title := strings.Repeat("a", 150)
	c, rec := newPostTestContext(t, fmt.Sprintf(`{"title":%q,"content":"body"}`, title))
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.created)
	assert.Equal(t, title, stub.created.Title)
}

// A title longer than the stored column must fail validation with a 400
// rather than reaching the store and surfacing as a 500.
func TestPostHandler_Create_RejectsOversizedTitle(t *testing.T) {
	stub := &stubPostUsecase{}
	h := NewPostHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	title := strings.Repeat("a", 180)
	c, _ := newPostTestContext(t, fmt.Sprintf(`{"title":%q,"content":"body"}`, title))
	err := h.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Nil(t, stub.created)
}
