package post

import (
	"context"
	"errors"

	"github.com/sai-shivani-9/blogging-platform/models"
)

var (
	ErrNotFound = errors.New("post not found")
	ErrNotOwner = errors.New("forbidden: not the post owner")
)

// Input carries the caller-editable fields of a post. Ownership, date, likes
// and comments are stamped by the store and never come from the caller.
type Input struct {
	Title          string
	Content        string
	ContentSnippet string
	ImageURL       string
	Category       string
}

// PostStorage holds the post collection. Mutating methods take the acting
// user from the context (auth.WithUserID); Update and Delete reject callers
// other than the owner with ErrNotOwner.
type PostStorage interface {
	Create(ctx context.Context, author string, in Input) (*models.Post, error)
	GetByID(id string) (*models.Post, error)
	// GetAll returns posts in creation order.
	GetAll() ([]*models.Post, error)
	Update(ctx context.Context, id string, in Input) (*models.Post, error)
	// Delete removes the post and returns it so the caller can clean up
	// references held elsewhere.
	Delete(ctx context.Context, id string) (*models.Post, error)
	// AdjustLikes moves the like count by exactly +1 or -1 and returns the
	// new count. It is the only way the count changes.
	AdjustLikes(id string, delta int) (int, error)
}
