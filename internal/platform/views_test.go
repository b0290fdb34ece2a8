package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sai-shivani-9/blogging-platform/internal/notify"
	"github.com/sai-shivani-9/blogging-platform/internal/seed"
	"github.com/sai-shivani-9/blogging-platform/internal/storage/memory"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// newSeededPlatform wires a platform over the demo dataset: Alice (regular
// user, two posts) and Bob (admin, one post).
func newSeededPlatform() *Platform {
	users := memory.NewUserMemoryStorage()
	users.Load(seed.Users())
	posts := memory.NewPostMemoryStorage()
	posts.Load(seed.Posts())
	comments := memory.NewCommentMemoryStorage(posts)

	p := New(users, posts, comments, notify.NewHub(), nil)
	p.SetCategories(seed.Categories())
	return p
}

func postIDs(posts []*models.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPlatform_FilteredPosts(t *testing.T) {
	p := newSeededPlatform()
	require.NoError(t, p.Login("Alice", "password123"))

	t.Run("No filter returns everything in order", func(t *testing.T) {
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Equal(t, []string{"post-1", "post-2", "post-3"}, postIDs(got))
	})

	t.Run("Category filter matches exactly", func(t *testing.T) {
		p.SetCategory("CSS")
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Equal(t, []string{"post-2"}, postIDs(got))
	})

	t.Run("All category matches everything", func(t *testing.T) {
		p.SetCategory(CategoryAll)
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Search matches title case-insensitively", func(t *testing.T) {
		p.SetSearchTerm("REACT")
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Equal(t, []string{"post-1"}, postIDs(got))
	})

	t.Run("Search matches the snippet too", func(t *testing.T) {
		p.SetSearchTerm("backend apis")
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Equal(t, []string{"post-3"}, postIDs(got))
	})

	t.Run("Search and category combine", func(t *testing.T) {
		p.SetCategory("Web Development")
		p.SetSearchTerm("tailwind")
		got, err := p.FilteredPosts()
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPlatform_Dashboard(t *testing.T) {
	p := newSeededPlatform()

	t.Run("Anonymous dashboard is refused", func(t *testing.T) {
		_, err := p.Dashboard()
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	require.NoError(t, p.Login("Alice", "password123"))

	t.Run("Aggregates follow the activity sets", func(t *testing.T) {
		d, err := p.Dashboard()
		require.NoError(t, err)

		assert.Equal(t, []string{"post-1", "post-3"}, postIDs(d.MyPosts))
		assert.Equal(t, []string{"post-2"}, postIDs(d.LikedPosts))
		require.Len(t, d.MyComments, 1)
		assert.Equal(t, "c2", d.MyComments[0].ID)
		assert.Equal(t, "Mastering Tailwind CSS for Responsive Design", d.MyComments[0].PostTitle)
	})

	t.Run("Aggregates reflect fresh activity", func(t *testing.T) {
		_, _, err := p.ToggleLike("post-3")
		require.NoError(t, err)

		d, err := p.Dashboard()
		require.NoError(t, err)
		assert.Equal(t, []string{"post-2", "post-3"}, postIDs(d.LikedPosts))
	})
}

func TestPlatform_AdminOverview(t *testing.T) {
	p := newSeededPlatform()

	t.Run("Anonymous request is refused", func(t *testing.T) {
		_, err := p.AdminOverview()
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("Regular user is refused", func(t *testing.T) {
		require.NoError(t, p.Login("Alice", "password123"))
		_, err := p.AdminOverview()
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Admin sees every account and post", func(t *testing.T) {
		p.Logout()
		require.NoError(t, p.Login("Bob", "password123"))

		o, err := p.AdminOverview()
		require.NoError(t, err)
		assert.Len(t, o.Users, 2)
		assert.Len(t, o.Posts, 3)
	})
}
