package platform

import (
	"fmt"
	"strings"

	"github.com/sai-shivani-9/blogging-platform/models"
)

// CommentWithPost is a comment annotated with its parent post's title, for
// the dashboard's "my comments" listing.
type CommentWithPost struct {
	models.Comment
	PostTitle string
}

// Dashboard holds the per-user aggregates. Everything is derived by scanning
// the post collection; nothing is cached.
type Dashboard struct {
	MyPosts    []*models.Post
	LikedPosts []*models.Post
	MyComments []CommentWithPost
}

// Overview is the admin view's payload: every account and every post.
type Overview struct {
	Users []*models.User
	Posts []*models.Post
}

// FilteredPosts returns the posts matching the session's category filter and
// search term. The category must match exactly (or be "All"); the search
// term matches case-insensitively against title or snippet. Full scan on
// every call.
func (p *Platform) FilteredPosts() ([]*models.Post, error) {
	all, err := p.posts.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	term := strings.ToLower(p.sess.SearchTerm)
	filtered := make([]*models.Post, 0, len(all))
	for _, pp := range all {
		if p.sess.Category != CategoryAll && p.sess.Category != "" && pp.Category != p.sess.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(pp.Title), term) &&
			!strings.Contains(strings.ToLower(pp.ContentSnippet), term) {
			continue
		}
		filtered = append(filtered, pp)
	}
	return filtered, nil
}

// Dashboard derives the current user's authored posts, liked posts, and
// comments (with parent post titles) from the full post collection.
func (p *Platform) Dashboard() (*Dashboard, error) {
	if p.sess.User == nil {
		return nil, ErrNotAuthenticated
	}

	all, err := p.posts.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	u := p.sess.User
	d := &Dashboard{
		MyPosts:    []*models.Post{},
		LikedPosts: []*models.Post{},
		MyComments: []CommentWithPost{},
	}
	for _, pp := range all {
		if containsID(u.CreatedPostIDs, pp.ID) {
			d.MyPosts = append(d.MyPosts, pp)
		}
		if containsID(u.LikedPostIDs, pp.ID) {
			d.LikedPosts = append(d.LikedPosts, pp)
		}
		for _, c := range pp.Comments {
			if c.UserID == u.ID {
				d.MyComments = append(d.MyComments, CommentWithPost{Comment: c, PostTitle: pp.Title})
			}
		}
	}
	return d, nil
}

// AdminOverview returns all users and posts. Only admins may reach the admin
// view; the resolver redirects everyone else, and this guards the data path.
func (p *Platform) AdminOverview() (*Overview, error) {
	if p.sess.User == nil {
		return nil, ErrNotAuthenticated
	}
	if p.sess.User.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	users, err := p.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	posts, err := p.posts.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &Overview{Users: users, Posts: posts}, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
