package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=150"`
	Content string `json:"content" validate:"required,min=1"`
}

type updatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=150"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("Invalid resource ID")
	}

	return id, nil
}

// Create handles the post creation request.
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid post payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), middleware.CurrentUser(c), &usecase.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewPostBody(post))
}

// List handles the post listing request.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewPostBodies(posts))
}

// Get handles the single post read request.
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewPostBody(post))
}

// Update handles the partial post update request.
func (h *PostHandler) Update(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid post payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), middleware.CurrentUser(c), postID, &usecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewPostBody(post))
}

// Delete handles the post deletion request.
func (h *PostHandler) Delete(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.CurrentUser(c), postID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Post deleted."})
}
