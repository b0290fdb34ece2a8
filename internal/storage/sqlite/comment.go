package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/comment"
	"github.com/sai-shivani-9/blogging-platform/models"
)

type CommentSqliteStorage struct{}

func NewCommentSqliteStorage() *CommentSqliteStorage {
	return &CommentSqliteStorage{}
}

func (s *CommentSqliteStorage) Add(ctx context.Context, postID, author, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" || len(text) > comment.MaxTextLen {
		return nil, comment.ErrInvalidText
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	un, err := parseID(userID, "user-")
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %v", err)
	}

	pn, err := parseID(postID, "post-")
	if err != nil {
		return nil, fmt.Errorf("add comment to %s: %w", postID, comment.ErrPostNotFound)
	}
	var parent postRow
	if err := DB.First(&parent, pn).Error; err != nil {
		return nil, fmt.Errorf("add comment to %s: %w", postID, comment.ErrPostNotFound)
	}

	row := commentRow{
		CommentID: uuid.New().String(),
		PostID:    pn,
		UserID:    un,
		Author:    author,
		Text:      text,
	}
	if err := DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %v", err)
	}

	c := toComment(row)
	return &c, nil
}
