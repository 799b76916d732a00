// Package response defines the wire shapes shared by the HTTP handlers.
package response

import (
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrorBody is the single error envelope used by every failing endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes a flat error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// UserSummary is the compact user projection embedded in auth responses.
// The password hash never leaves the server.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
}

// PostBody is the public projection of a post.
type PostBody struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentBody is the public projection of a comment.
type CommentBody struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPostBody converts a post entity to its wire shape.
func NewPostBody(post *entity.Post) PostBody {
	return PostBody{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// NewPostBodies converts a slice of post entities to their wire shapes.
func NewPostBodies(posts []*entity.Post) []PostBody {
	bodies := make([]PostBody, 0, len(posts))
	for _, post := range posts {
		bodies = append(bodies, NewPostBody(post))
	}

	return bodies
}

// NewCommentBody converts a comment entity to its wire shape.
func NewCommentBody(comment *entity.Comment) CommentBody {
	return CommentBody{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}
}

// NewCommentBodies converts a slice of comment entities to their wire shapes.
func NewCommentBodies(comments []*entity.Comment) []CommentBody {
	bodies := make([]CommentBody, 0, len(comments))
	for _, comment := range comments {
		bodies = append(bodies, NewCommentBody(comment))
	}

	return bodies
}
