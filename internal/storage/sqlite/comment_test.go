package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sai-shivani-9/blogging-platform/internal/comment"
)

func TestCommentSqliteStorage_Add(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()
	comments := NewCommentSqliteStorage()

	alice, err := users.Register("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	p, err := posts.Create(userContext(alice.ID), "alice", postInput("Commented post"))
	require.NoError(t, err)

	ctx := userContext(alice.ID)

	t.Run("Successful comment", func(t *testing.T) {
		c, err := comments.Add(ctx, p.ID, "alice", "Nice post!")
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "alice", c.Author)
		assert.Equal(t, alice.ID, c.UserID)
		assert.Equal(t, p.ID, c.PostID)
	})

	t.Run("Comments keep arrival order on the post", func(t *testing.T) {
		_, err := comments.Add(ctx, p.ID, "alice", "Second thought")
		require.NoError(t, err)

		got, err := posts.GetByID(p.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "Nice post!", got.Comments[0].Text)
		assert.Equal(t, "Second thought", got.Comments[1].Text)
	})

	t.Run("Comment shows up on the author's record", func(t *testing.T) {
		u, err := users.GetByID(alice.ID)
		require.NoError(t, err)
		assert.Len(t, u.MadeCommentIDs, 2)
	})

	t.Run("Unknown post", func(t *testing.T) {
		_, err := comments.Add(ctx, "post-999", "alice", "into the void")
		assert.ErrorIs(t, err, comment.ErrPostNotFound)
	})

	t.Run("Empty text", func(t *testing.T) {
		_, err := comments.Add(ctx, p.ID, "alice", "   ")
		assert.ErrorIs(t, err, comment.ErrInvalidText)
	})

	t.Run("Oversized text", func(t *testing.T) {
		_, err := comments.Add(ctx, p.ID, "alice", strings.Repeat("x", comment.MaxTextLen+1))
		assert.ErrorIs(t, err, comment.ErrInvalidText)
	})
}
