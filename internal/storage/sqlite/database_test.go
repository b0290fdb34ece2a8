package sqlite

import (
	"context"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// setupTestDB opens a private in-memory database, migrates the schema and
// installs it as the package connection. The returned func restores the
// previous connection.
func setupTestDB(t *testing.T) func() {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.LogMode(false)

	err = db.AutoMigrate(&userRow{}, &postRow{}, &commentRow{}, &likeRow{}).Error
	require.NoError(t, err)

	old := DB
	InitDBWithConnection(db)

	return func() {
		db.Close()
		InitDBWithConnection(old)
	}
}

func userContext(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

func TestParseID(t *testing.T) {
	t.Run("Well-formed id", func(t *testing.T) {
		n, err := parseID("user-42", "user-")
		require.NoError(t, err)
		assert.Equal(t, uint(42), n)
	})

	t.Run("Wrong prefix", func(t *testing.T) {
		_, err := parseID("post-42", "user-")
		assert.Error(t, err)
	})

	t.Run("Non-numeric tail", func(t *testing.T) {
		_, err := parseID("user-abc", "user-")
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	users := []*models.User{
		{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: "pw", Role: models.RoleUser,
			LikedPostIDs: []string{"post-1"}},
		{ID: "user-2", Username: "bob", Email: "bob@example.com", Password: "pw", Role: models.RoleAdmin},
	}
	posts := []*models.Post{
		{ID: "post-1", Title: "Seeded", Author: "bob", Date: "2024-01-15", UserID: "user-2", Likes: 15,
			Comments: []models.Comment{
				{ID: "c1", Author: "alice", Text: "Great read!", UserID: "user-1", PostID: "post-1"},
			}},
	}
	require.NoError(t, Load(users, posts))

	t.Run("Users are retrievable with derived sets", func(t *testing.T) {
		storage := NewUserSqliteStorage()

		alice, err := storage.GetByID("user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"post-1"}, alice.LikedPostIDs)
		assert.Equal(t, []string{"c1"}, alice.MadeCommentIDs)

		bob, err := storage.GetByID("user-2")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, bob.Role)
		assert.Equal(t, []string{"post-1"}, bob.CreatedPostIDs)
	})

	t.Run("Posts carry their comments and likes", func(t *testing.T) {
		storage := NewPostSqliteStorage()

		p, err := storage.GetByID("post-1")
		require.NoError(t, err)
		assert.Equal(t, 15, p.Likes)
		require.Len(t, p.Comments, 1)
		assert.Equal(t, "c1", p.Comments[0].ID)
	})

	t.Run("New rows continue past the seed", func(t *testing.T) {
		storage := NewUserSqliteStorage()

		u, err := storage.Register("carol", "carol@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "user-3", u.ID)
	})
}
