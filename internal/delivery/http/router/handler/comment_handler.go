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

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	PostID  string `json:"post_id" validate:"required,uuid"`
}

type updateCommentRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// Create handles the comment creation request.
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid comment payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid post_id")
	}

	comment, err := h.uc.Create(c.Request().Context(), middleware.CurrentUser(c), &usecase.CreateCommentInput{
		Content: req.Content,
		PostID:  postID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewCommentBody(comment))
}

// List handles the comment listing request, optionally filtered by post.
func (h *CommentHandler) List(c echo.Context) error {
	var postID *uuid.UUID
	if raw := c.QueryParam("post_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Invalid post_id")
		}
		postID = &id
	}

	comments, err := h.uc.List(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCommentBodies(comments))
}

// Get handles the single comment read request.
func (h *CommentHandler) Get(c echo.Context) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	comment, err := h.uc.Get(c.Request().Context(), commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCommentBody(comment))
}

// Update handles the partial comment update request.
func (h *CommentHandler) Update(c echo.Context) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid comment payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.Update(c.Request().Context(), middleware.CurrentUser(c), commentID, &usecase.UpdateCommentInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCommentBody(comment))
}

// Delete handles the comment deletion request.
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.CurrentUser(c), commentID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Comment deleted."})
}
