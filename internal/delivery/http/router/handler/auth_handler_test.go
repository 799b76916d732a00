package handler

import (
	"context"
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

// stubAuthUsecase records the inputs the handler passes down and returns
// canned results.
type stubAuthUsecase struct {
	registerInput *usecase.RegisterInput
	registerOut   *usecase.RegisterOutput
	registerErr   error
	loginOut      *usecase.LoginOutput
	loginErr      error
}

func (s *stubAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.registerInput = input

	return s.registerOut, s.registerErr
}

func (s *stubAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	v, err := validator.New()
	require.NoError(t, err)
	e.Validator = v

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	stub := &stubAuthUsecase{registerOut: &usecase.RegisterOutput{User: user}}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAuthTestContext(t, `{"username":"alice","email":"alice@example.com","password":"Valid123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"User registered successfully"`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_WeakPasswordRejected(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAuthTestContext(t, `{"username":"alice","email":"alice@example.com","password":"alllowercase1"}`)
	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Nil(t, stub.registerInput)
}

func TestAuthHandler_Login_ReturnsBearerToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	stub := &stubAuthUsecase{loginOut: &usecase.LoginOutput{AccessToken: "signed-token", User: user}}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAuthTestContext(t, `{"username":"alice","password":"Valid123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}
