package comment

import (
	"context"
	"errors"

	"github.com/sai-shivani-9/blogging-platform/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidText  = errors.New("comment text is empty or too long")
)

const MaxTextLen = 2000

// CommentStorage appends comments to posts. Comments are never edited or
// deleted on their own; they disappear only with their parent post. The
// acting user comes from the context (auth.WithUserID).
type CommentStorage interface {
	Add(ctx context.Context, postID, author, text string) (*models.Comment, error)
}
