package user

import (
	"errors"

	"github.com/sai-shivani-9/blogging-platform/models"
)

// The closed set of account outcomes. Callers discriminate with errors.Is.
var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStorage keeps user accounts and their activity sets consistent with
// post and comment ownership. Username and email uniqueness is checked
// case-insensitively on Register and UpdateProfile; Authenticate matches both
// fields exactly, case included.
type UserStorage interface {
	Register(username, email, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]*models.User, error)
	UpdateProfile(id, username, email string) (*models.User, error)

	// LinkPost records post ownership in the user's created set.
	LinkPost(userID, postID string) error
	// LinkComment records comment authorship in the user's made set.
	LinkComment(userID, commentID string) error
	// SetLiked sets membership of (user, post) in the liked relation.
	SetLiked(userID, postID string, liked bool) error
	HasLiked(userID, postID string) (bool, error)
	// ForgetPost removes a deleted post's ID from every user's created and
	// liked sets and the given comment IDs from every user's made set.
	ForgetPost(postID string, commentIDs []string) error
}
