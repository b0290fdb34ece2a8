package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/comment"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// CommentMemoryStorage appends comments to the posts held by its sibling
// post store. Comment IDs are UUIDs so rapid successive inserts never collide.
type CommentMemoryStorage struct {
	posts *PostMemoryStorage
}

func NewCommentMemoryStorage(posts *PostMemoryStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{posts: posts}
}

func (s *CommentMemoryStorage) Add(ctx context.Context, postID, author, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" || len(text) > comment.MaxTextLen {
		return nil, comment.ErrInvalidText
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	c := models.Comment{
		ID:     uuid.New().String(),
		Author: author,
		Text:   text,
		UserID: userID,
		PostID: postID,
	}

	if err := s.posts.appendComment(postID, c); err != nil {
		return nil, fmt.Errorf("add comment to %s: %w", postID, comment.ErrPostNotFound)
	}

	return &c, nil
}
