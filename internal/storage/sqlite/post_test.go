package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sai-shivani-9/blogging-platform/internal/post"
)

func postInput(title string) post.Input {
	return post.Input{
		Title:          title,
		Content:        "Test content",
		ContentSnippet: "Test snippet",
		ImageURL:       "https://example.com/img.png",
		Category:       "Technology",
	}
}

func TestPostSqliteStorage_Create(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()

	alice, err := users.Register("alice", "alice@example.com", "pw")
	require.NoError(t, err)

	t.Run("Successful post creation", func(t *testing.T) {
		p, err := posts.Create(userContext(alice.ID), "alice", postInput("Test post"))
		require.NoError(t, err)
		assert.Equal(t, "post-1", p.ID)
		assert.Equal(t, "alice", p.Author)
		assert.Equal(t, alice.ID, p.UserID)
		assert.Equal(t, time.Now().Format("2006-01-02"), p.Date)
		assert.Equal(t, 0, p.Likes)
		assert.Empty(t, p.Comments)
	})

	t.Run("Ownership shows up on the author's record", func(t *testing.T) {
		u, err := users.GetByID(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"post-1"}, u.CreatedPostIDs)
	})

	t.Run("Creation without a user in context", func(t *testing.T) {
		_, err := posts.Create(userContext(""), "alice", postInput("No user"))
		assert.Error(t, err)
	})
}

func TestPostSqliteStorage_UpdateAndDelete(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()

	alice, err := users.Register("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	bob, err := users.Register("bob", "bob@example.com", "pw")
	require.NoError(t, err)

	created, err := posts.Create(userContext(alice.ID), "alice", postInput("Original"))
	require.NoError(t, err)
	_, err = posts.AdjustLikes(created.ID, 1)
	require.NoError(t, err)

	t.Run("Owner can update editable fields", func(t *testing.T) {
		in := postInput("Updated title")
		in.Category = "Travel"

		updated, err := posts.Update(userContext(alice.ID), created.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Updated title", updated.Title)
		assert.Equal(t, "Travel", updated.Category)
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, 1, updated.Likes)
	})

	t.Run("Non-owner cannot update", func(t *testing.T) {
		_, err := posts.Update(userContext(bob.ID), created.ID, postInput("Hijack"))
		assert.ErrorIs(t, err, post.ErrNotOwner)
	})

	t.Run("Non-owner cannot delete", func(t *testing.T) {
		_, err := posts.Delete(userContext(bob.ID), created.ID)
		assert.ErrorIs(t, err, post.ErrNotOwner)
	})

	t.Run("Owner deletion returns the removed post", func(t *testing.T) {
		removed, err := posts.Delete(userContext(alice.ID), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, removed.ID)

		_, err = posts.GetByID(created.ID)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}

func TestPostSqliteStorage_AdjustLikes(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()

	alice, err := users.Register("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	created, err := posts.Create(userContext(alice.ID), "alice", postInput("Likeable"))
	require.NoError(t, err)

	t.Run("Increment and decrement", func(t *testing.T) {
		likes, err := posts.AdjustLikes(created.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, likes)

		likes, err = posts.AdjustLikes(created.ID, -1)
		require.NoError(t, err)
		assert.Equal(t, 0, likes)
	})

	t.Run("Only unit deltas are accepted", func(t *testing.T) {
		_, err := posts.AdjustLikes(created.ID, 5)
		assert.Error(t, err)
	})

	t.Run("Unknown post", func(t *testing.T) {
		_, err := posts.AdjustLikes("post-999", 1)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}

func TestPostSqliteStorage_GetAll(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()

	alice, err := users.Register("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	first, err := posts.Create(userContext(alice.ID), "alice", postInput("First"))
	require.NoError(t, err)
	second, err := posts.Create(userContext(alice.ID), "alice", postInput("Second"))
	require.NoError(t, err)

	all, err := posts.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}
