package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/post"
	"github.com/sai-shivani-9/blogging-platform/models"
)

type PostSqliteStorage struct{}

func NewPostSqliteStorage() *PostSqliteStorage {
	return &PostSqliteStorage{}
}

func (s *PostSqliteStorage) Create(ctx context.Context, author string, in post.Input) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	ownerID, err := parseID(userID, "user-")
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %v", err)
	}

	row := postRow{
		Title:          in.Title,
		Author:         author,
		Date:           time.Now().Format("2006-01-02"),
		Content:        in.Content,
		ContentSnippet: in.ContentSnippet,
		ImageURL:       in.ImageURL,
		Likes:          0,
		Category:       in.Category,
		OwnerID:        ownerID,
	}
	if err := DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %v", err)
	}

	return toPost(row, nil), nil
}

func (s *PostSqliteStorage) GetByID(id string) (*models.Post, error) {
	row, err := s.find(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentsOf(row.ID)
	if err != nil {
		return nil, err
	}
	return toPost(*row, comments), nil
}

func (s *PostSqliteStorage) GetAll() ([]*models.Post, error) {
	var rows []postRow
	if err := DB.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %v", err)
	}

	posts := make([]*models.Post, 0, len(rows))
	for _, row := range rows {
		comments, err := s.commentsOf(row.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, toPost(row, comments))
	}
	return posts, nil
}

func (s *PostSqliteStorage) Update(ctx context.Context, id string, in post.Input) (*models.Post, error) {
	row, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Title = in.Title
	row.Content = in.Content
	row.ContentSnippet = in.ContentSnippet
	row.ImageURL = in.ImageURL
	row.Category = in.Category
	if err := DB.Save(row).Error; err != nil {
		return nil, fmt.Errorf("failed to update post %s: %v", id, err)
	}

	comments, err := s.commentsOf(row.ID)
	if err != nil {
		return nil, err
	}
	return toPost(*row, comments), nil
}

func (s *PostSqliteStorage) Delete(ctx context.Context, id string) (*models.Post, error) {
	row, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentsOf(row.ID)
	if err != nil {
		return nil, err
	}
	removed := toPost(*row, comments)

	if err := DB.Delete(row).Error; err != nil {
		return nil, fmt.Errorf("failed to delete post %s: %v", id, err)
	}
	return removed, nil
}

func (s *PostSqliteStorage) AdjustLikes(id string, delta int) (int, error) {
	if delta != 1 && delta != -1 {
		return 0, fmt.Errorf("adjust likes: delta must be +1 or -1, got %d", delta)
	}

	row, err := s.find(id)
	if err != nil {
		return 0, err
	}

	row.Likes += delta
	if row.Likes < 0 {
		row.Likes = 0
	}
	if err := DB.Model(row).UpdateColumn("likes", row.Likes).Error; err != nil {
		return 0, fmt.Errorf("failed to adjust likes of %s: %v", id, err)
	}
	return row.Likes, nil
}

func (s *PostSqliteStorage) find(id string) (*postRow, error) {
	n, err := parseID(id, "post-")
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	var row postRow
	if err := DB.First(&row, n).Error; err != nil {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	return &row, nil
}

func (s *PostSqliteStorage) findOwned(ctx context.Context, id string) (*postRow, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	row, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if userIDString(row.OwnerID) != userID {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotOwner)
	}
	return row, nil
}

func (s *PostSqliteStorage) commentsOf(postID uint) ([]commentRow, error) {
	var comments []commentRow
	if err := DB.Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %v", err)
	}
	return comments, nil
}
