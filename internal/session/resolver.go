package session

import "github.com/sai-shivani-9/blogging-platform/models"

// PostFinder is the slice of the post store the resolver needs.
type PostFinder interface {
	GetByID(id string) (*models.Post, error)
}

// Resolve maps a requested navigation target to the one that may actually be
// rendered for the given user:
//
//   - anonymous users land on login for any page that requires auth
//   - non-admins requesting the admin dashboard land on the dashboard
//   - post-detail and edit-post fall back to the blog list when the post
//     does not exist, as does edit-post for anyone but the owner
//
// It is a pure function of its arguments and must be re-evaluated on every
// navigation request, never cached.
func Resolve(user *models.User, req Target, posts PostFinder) Target {
	if req.Page == "" {
		req.Page = PageLogin
	}

	if user == nil {
		if req.Page.RequiresAuth() {
			return Target{Page: PageLogin}
		}
		return req
	}

	switch req.Page {
	case PageAdmin:
		if user.Role != models.RoleAdmin {
			return Target{Page: PageDashboard}
		}
	case PagePostDetail:
		if _, err := posts.GetByID(req.PostID); err != nil {
			return Target{Page: PageBlogList}
		}
	case PageEditPost:
		p, err := posts.GetByID(req.PostID)
		if err != nil || p.UserID != user.ID {
			return Target{Page: PageBlogList}
		}
	}
	return req
}
