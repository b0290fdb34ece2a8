package sqlite

import (
	"fmt"

	"github.com/sai-shivani-9/blogging-platform/internal/user"
	"github.com/sai-shivani-9/blogging-platform/models"
)

type UserSqliteStorage struct{}

func NewUserSqliteStorage() *UserSqliteStorage {
	return &UserSqliteStorage{}
}

func (s *UserSqliteStorage) Register(username, email, password string) (*models.User, error) {
	var existing userRow
	if err := DB.Where("LOWER(username) = LOWER(?)", username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("register %s: %w", username, user.ErrUsernameTaken)
	}
	if err := DB.Where("LOWER(email) = LOWER(?)", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("register %s: %w", username, user.ErrEmailTaken)
	}

	row := userRow{
		Username: username,
		Email:    email,
		Password: password,
		Role:     string(models.RoleUser),
	}
	if err := DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return s.assemble(row)
}

// Authenticate matches both fields exactly; SQLite's default BINARY collation
// keeps the username comparison case-sensitive.
func (s *UserSqliteStorage) Authenticate(username, password string) (*models.User, error) {
	var row userRow
	err := DB.Where("username = ? AND password = ?", username, password).First(&row).Error
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return s.assemble(row)
}

func (s *UserSqliteStorage) GetByID(id string) (*models.User, error) {
	n, err := parseID(id, "user-")
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}
	var row userRow
	if err := DB.First(&row, n).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}
	return s.assemble(row)
}

func (s *UserSqliteStorage) GetAll() ([]*models.User, error) {
	var rows []userRow
	if err := DB.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}

	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		u, err := s.assemble(row)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *UserSqliteStorage) UpdateProfile(id, username, email string) (*models.User, error) {
	n, err := parseID(id, "user-")
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}
	var row userRow
	if err := DB.First(&row, n).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}

	var other userRow
	if err := DB.Where("LOWER(username) = LOWER(?) AND id <> ?", username, n).First(&other).Error; err == nil {
		return nil, fmt.Errorf("update profile %s: %w", id, user.ErrUsernameTaken)
	}
	if err := DB.Where("LOWER(email) = LOWER(?) AND id <> ?", email, n).First(&other).Error; err == nil {
		return nil, fmt.Errorf("update profile %s: %w", id, user.ErrEmailTaken)
	}

	row.Username = username
	row.Email = email
	if err := DB.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %s: %v", id, err)
	}

	return s.assemble(row)
}

// LinkPost is a no-op here: the post row already carries the owner, and the
// created set is derived from it.
func (s *UserSqliteStorage) LinkPost(userID, postID string) error {
	return nil
}

// LinkComment is a no-op for the same reason as LinkPost.
func (s *UserSqliteStorage) LinkComment(userID, commentID string) error {
	return nil
}

func (s *UserSqliteStorage) SetLiked(userID, postID string, liked bool) error {
	un, err := parseID(userID, "user-")
	if err != nil {
		return fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	pn, err := parseID(postID, "post-")
	if err != nil {
		return fmt.Errorf("malformed post id %q", postID)
	}

	if liked {
		var row likeRow
		err := DB.Where(likeRow{UserID: un, PostID: pn}).FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("failed to record like: %v", err)
		}
		return nil
	}
	if err := DB.Where("user_id = ? AND post_id = ?", un, pn).Delete(likeRow{}).Error; err != nil {
		return fmt.Errorf("failed to remove like: %v", err)
	}
	return nil
}

func (s *UserSqliteStorage) HasLiked(userID, postID string) (bool, error) {
	un, err := parseID(userID, "user-")
	if err != nil {
		return false, fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	pn, err := parseID(postID, "post-")
	if err != nil {
		return false, nil
	}

	var count int
	err = DB.Model(&likeRow{}).Where("user_id = ? AND post_id = ?", un, pn).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %v", err)
	}
	return count > 0, nil
}

// ForgetPost drops the deleted post's like and comment rows; the derived
// sets disappear with them.
func (s *UserSqliteStorage) ForgetPost(postID string, commentIDs []string) error {
	pn, err := parseID(postID, "post-")
	if err != nil {
		return fmt.Errorf("malformed post id %q", postID)
	}

	if err := DB.Where("post_id = ?", pn).Delete(likeRow{}).Error; err != nil {
		return fmt.Errorf("failed to drop likes of %s: %v", postID, err)
	}
	if err := DB.Where("post_id = ?", pn).Delete(commentRow{}).Error; err != nil {
		return fmt.Errorf("failed to drop comments of %s: %v", postID, err)
	}
	return nil
}

// assemble builds the full user record: the activity sets come from the
// posts, likes and comments tables.
func (s *UserSqliteStorage) assemble(row userRow) (*models.User, error) {
	u := &models.User{
		ID:             userIDString(row.ID),
		Username:       row.Username,
		Email:          row.Email,
		Password:       row.Password,
		Role:           models.Role(row.Role),
		CreatedPostIDs: []string{},
		LikedPostIDs:   []string{},
		MadeCommentIDs: []string{},
	}

	var posts []postRow
	if err := DB.Where("owner_id = ?", row.ID).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to load created posts: %v", err)
	}
	for _, p := range posts {
		u.CreatedPostIDs = append(u.CreatedPostIDs, postIDString(p.ID))
	}

	var likes []likeRow
	if err := DB.Where("user_id = ?", row.ID).Order("id").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to load liked posts: %v", err)
	}
	for _, l := range likes {
		u.LikedPostIDs = append(u.LikedPostIDs, postIDString(l.PostID))
	}

	var comments []commentRow
	if err := DB.Where("user_id = ?", row.ID).Order("id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %v", err)
	}
	for _, c := range comments {
		u.MadeCommentIDs = append(u.MadeCommentIDs, c.CommentID)
	}

	return u, nil
}
