package platform

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/comment"
	"github.com/sai-shivani-9/blogging-platform/internal/notify"
	"github.com/sai-shivani-9/blogging-platform/internal/post"
	"github.com/sai-shivani-9/blogging-platform/internal/session"
	"github.com/sai-shivani-9/blogging-platform/internal/user"
	"github.com/sai-shivani-9/blogging-platform/models"
)

var (
	// ErrNotAuthenticated is returned by operations that need a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the admin overview is requested without
	// the admin role.
	ErrForbidden = errors.New("admin role required")
)

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// DefaultCategories are offered to the host view layer for the list filter.
var DefaultCategories = []string{"Web Development", "CSS", "Backend", "Technology", "Lifestyle"}

// Platform coordinates the entity stores and owns the current session. It is
// the single writer of entity state: every operation runs to completion on
// the calling goroutine before the next event is processed, and either fully
// applies or leaves the stores untouched.
type Platform struct {
	users    user.UserStorage
	posts    post.PostStorage
	comments comment.CommentStorage
	notifier notify.Notifier
	log      *zap.Logger

	sess       session.Session
	categories []string
}

// New wires a platform over the given stores. The notifier may be nil when
// no view cares about change events; a nil logger is replaced by a no-op one.
func New(users user.UserStorage, posts post.PostStorage, comments comment.CommentStorage, notifier notify.Notifier, logger *zap.Logger) *Platform {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Platform{
		users:    users,
		posts:    posts,
		comments: comments,
		notifier: notifier,
		log:      logger,
		sess: session.Session{
			Target:   session.Target{Page: session.PageLogin},
			Category: CategoryAll,
		},
		categories: DefaultCategories,
	}
}

// Session returns a copy of the current session.
func (p *Platform) Session() session.Session {
	return p.sess
}

func (p *Platform) CurrentUser() *models.User {
	return p.sess.User
}

func (p *Platform) Categories() []string {
	return p.categories
}

func (p *Platform) SetCategories(categories []string) {
	p.categories = categories
}

// Navigate resolves the requested target against the current session and
// makes the result the session's target. Denied requests redirect silently.
func (p *Platform) Navigate(req session.Target) session.Target {
	resolved := session.Resolve(p.sess.User, req, p.posts)
	if resolved != req {
		p.log.Debug("navigation redirected",
			zap.String("requested", string(req.Page)),
			zap.String("resolved", string(resolved.Page)))
	}
	p.sess.Target = resolved
	return resolved
}

// Login authenticates and, on success, opens a session landing on the
// dashboard. On failure the session is left exactly as it was.
func (p *Platform) Login(username, password string) error {
	u, err := p.users.Authenticate(username, password)
	if err != nil {
		p.log.Info("login failed", zap.String("username", username))
		return err
	}

	p.sess.User = u
	p.sess.Target = session.Target{Page: session.PageDashboard}
	p.log.Info("login", zap.String("user", u.ID), zap.String("role", string(u.Role)))
	return nil
}

func (p *Platform) Logout() {
	if p.sess.User != nil {
		p.log.Info("logout", zap.String("user", p.sess.User.ID))
	}
	p.sess.User = nil
	p.sess.Target = session.Target{Page: session.PageLogin}
}

// Register creates an account and points the session at the login page so
// the new user can sign in. The store rejects duplicate usernames and emails
// case-insensitively without mutating anything.
func (p *Platform) Register(username, email, password string) error {
	u, err := p.users.Register(username, email, password)
	if err != nil {
		return err
	}

	p.sess.Target = session.Target{Page: session.PageLogin}
	p.publish(notify.Event{Kind: notify.KindUserRegistered, UserID: u.ID})
	p.log.Info("user registered", zap.String("user", u.ID))
	return nil
}

func (p *Platform) CreatePost(in post.Input) (*models.Post, error) {
	ctx, err := p.ctx()
	if err != nil {
		return nil, err
	}

	created, err := p.posts.Create(ctx, p.sess.User.Username, in)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if err := p.users.LinkPost(p.sess.User.ID, created.ID); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	p.refreshUser()
	p.sess.Target = session.Target{Page: session.PageBlogList}
	p.publish(notify.Event{Kind: notify.KindPostCreated, PostID: created.ID, UserID: created.UserID})
	p.log.Info("post created", zap.String("post", created.ID), zap.String("user", created.UserID))
	return created, nil
}

func (p *Platform) UpdatePost(id string, in post.Input) (*models.Post, error) {
	ctx, err := p.ctx()
	if err != nil {
		return nil, err
	}

	updated, err := p.posts.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	p.sess.Target = session.Target{Page: session.PagePostDetail, PostID: id}
	p.publish(notify.Event{Kind: notify.KindPostUpdated, PostID: id, UserID: updated.UserID})
	p.log.Info("post updated", zap.String("post", id))
	return updated, nil
}

// DeletePost removes the post and sweeps its ID, and its comments' IDs, out
// of every user's activity sets.
func (p *Platform) DeletePost(id string) error {
	ctx, err := p.ctx()
	if err != nil {
		return err
	}

	removed, err := p.posts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	commentIDs := make([]string, 0, len(removed.Comments))
	for _, c := range removed.Comments {
		commentIDs = append(commentIDs, c.ID)
	}
	if err := p.users.ForgetPost(id, commentIDs); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	p.refreshUser()
	p.sess.Target = session.Target{Page: session.PageBlogList}
	p.publish(notify.Event{Kind: notify.KindPostDeleted, PostID: id, UserID: removed.UserID})
	p.log.Info("post deleted", zap.String("post", id), zap.Int("comments swept", len(commentIDs)))
	return nil
}

// ToggleLike flips the (current user, post) membership in the liked relation
// and moves the post's count by exactly one. It returns the new membership
// and count.
func (p *Platform) ToggleLike(postID string) (bool, int, error) {
	if p.sess.User == nil {
		return false, 0, ErrNotAuthenticated
	}

	liked, err := p.users.HasLiked(p.sess.User.ID, postID)
	if err != nil {
		return false, 0, fmt.Errorf("toggle like: %w", err)
	}

	delta := 1
	if liked {
		delta = -1
	}
	count, err := p.posts.AdjustLikes(postID, delta)
	if err != nil {
		return false, 0, fmt.Errorf("toggle like: %w", err)
	}
	if err := p.users.SetLiked(p.sess.User.ID, postID, !liked); err != nil {
		return false, 0, fmt.Errorf("toggle like: %w", err)
	}

	p.refreshUser()
	p.publish(notify.Event{Kind: notify.KindPostLiked, PostID: postID, UserID: p.sess.User.ID})
	return !liked, count, nil
}

func (p *Platform) AddComment(postID, text string) (*models.Comment, error) {
	ctx, err := p.ctx()
	if err != nil {
		return nil, err
	}

	c, err := p.comments.Add(ctx, postID, p.sess.User.Username, text)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	if err := p.users.LinkComment(p.sess.User.ID, c.ID); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	p.refreshUser()
	p.publish(notify.Event{Kind: notify.KindCommentAdded, PostID: postID, UserID: c.UserID})
	return c, nil
}

// UpdateProfile replaces the current user's username and email; uniqueness
// is re-checked against every other account. Posts keep the display name
// they were published under.
func (p *Platform) UpdateProfile(username, email string) error {
	if p.sess.User == nil {
		return ErrNotAuthenticated
	}

	u, err := p.users.UpdateProfile(p.sess.User.ID, username, email)
	if err != nil {
		return err
	}

	p.sess.User = u
	p.sess.Target = session.Target{Page: session.PageDashboard}
	p.publish(notify.Event{Kind: notify.KindProfileUpdated, UserID: u.ID})
	p.log.Info("profile updated", zap.String("user", u.ID))
	return nil
}

func (p *Platform) SetSearchTerm(term string) {
	p.sess.SearchTerm = term
}

func (p *Platform) SetCategory(category string) {
	p.sess.Category = category
}

func (p *Platform) ctx() (context.Context, error) {
	if p.sess.User == nil {
		return nil, ErrNotAuthenticated
	}
	return auth.WithUserID(context.Background(), p.sess.User.ID), nil
}

// refreshUser reloads the session's user so its activity sets reflect the
// mutation that just committed, whichever backend is underneath.
func (p *Platform) refreshUser() {
	if p.sess.User == nil {
		return
	}
	if u, err := p.users.GetByID(p.sess.User.ID); err == nil {
		p.sess.User = u
	}
}

func (p *Platform) publish(e notify.Event) {
	if p.notifier != nil {
		p.notifier.Publish(e)
	}
}
