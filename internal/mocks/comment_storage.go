package mocks

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/comment"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// MockCommentStorage appends comments to the posts held by a MockPostStorage.
type MockCommentStorage struct {
	posts *MockPostStorage
}

func NewMockCommentStorage(posts *MockPostStorage) *MockCommentStorage {
	return &MockCommentStorage{posts: posts}
}

func (m *MockCommentStorage) Add(ctx context.Context, postID, author, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" || len(text) > comment.MaxTextLen {
		return nil, comment.ErrInvalidText
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m.posts.mu.Lock()
	defer m.posts.mu.Unlock()

	p, ok := m.posts.posts[postID]
	if !ok {
		return nil, comment.ErrPostNotFound
	}

	c := models.Comment{
		ID:     uuid.New().String(),
		Author: author,
		Text:   text,
		UserID: userID,
		PostID: postID,
	}
	p.Comments = append(p.Comments, c)
	return &c, nil
}
