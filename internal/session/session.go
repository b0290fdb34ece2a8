package session

import "github.com/sai-shivani-9/blogging-platform/models"

// Page is a logical view identifier.
type Page string

const (
	PageLogin      Page = "login"
	PageRegister   Page = "register"
	PageDashboard  Page = "dashboard"
	PageBlogList   Page = "blog-list"
	PageCreatePost Page = "create-post"
	PagePostDetail Page = "post-detail"
	PageEditPost   Page = "edit-post"
	PageProfile    Page = "profile"
	PageAdmin      Page = "admin-dashboard"
)

// RequiresAuth reports whether the page is reachable only while logged in.
func (p Page) RequiresAuth() bool {
	switch p {
	case PageLogin, PageRegister:
		return false
	}
	return true
}

// Target is a page plus the post it addresses, for the pages that take one.
type Target struct {
	Page   Page
	PostID string // set for post-detail and edit-post
}

// Session is the current identity (nil user = anonymous), the resolved
// navigation target, and the ephemeral view state that travels with it.
type Session struct {
	User       *models.User
	Target     Target
	SearchTerm string
	Category   string
}

func (s *Session) Authenticated() bool { return s.User != nil }
