package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sai-shivani-9/blogging-platform/models"
)

// Row types are private to this backend; the rest of the system sees only
// the shared models. Activity sets and the liked relation are not stored on
// the user row at all: they are derived from the posts, comments and likes
// tables, so referential integrity holds by construction.

type userRow struct {
	ID       uint   `gorm:"primary_key"`
	Username string `gorm:"not null"`
	Email    string `gorm:"not null"`
	Password string
	Role     string
}

func (userRow) TableName() string { return "users" }

type postRow struct {
	ID             uint `gorm:"primary_key"`
	Title          string
	Author         string
	Date           string
	Content        string `gorm:"type:text"`
	ContentSnippet string
	ImageURL       string
	Likes          int
	Category       string
	OwnerID        uint `gorm:"index"`
}

func (postRow) TableName() string { return "posts" }

type commentRow struct {
	ID        uint   `gorm:"primary_key"`
	CommentID string `gorm:"unique_index"`
	PostID    uint   `gorm:"index"`
	UserID    uint
	Author    string
	Text      string `gorm:"type:text"`
}

func (commentRow) TableName() string { return "comments" }

// likeRow is the user side of the liked relation; the aggregate count lives
// on the post row and moves only with it.
type likeRow struct {
	ID     uint `gorm:"primary_key"`
	UserID uint `gorm:"index"`
	PostID uint `gorm:"index"`
}

func (likeRow) TableName() string { return "likes" }

func userIDString(n uint) string { return fmt.Sprintf("user-%d", n) }
func postIDString(n uint) string { return fmt.Sprintf("post-%d", n) }

// parseID extracts the numeric tail of a "prefix-N" identifier.
func parseID(id, prefix string) (uint, error) {
	tail := strings.TrimPrefix(id, prefix)
	if tail == id {
		return 0, fmt.Errorf("malformed id %q", id)
	}
	n, err := strconv.ParseUint(tail, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed id %q", id)
	}
	return uint(n), nil
}

func toComment(row commentRow) models.Comment {
	return models.Comment{
		ID:     row.CommentID,
		Author: row.Author,
		Text:   row.Text,
		UserID: userIDString(row.UserID),
		PostID: postIDString(row.PostID),
	}
}

func toPost(row postRow, comments []commentRow) *models.Post {
	p := &models.Post{
		ID:             postIDString(row.ID),
		Title:          row.Title,
		Author:         row.Author,
		Date:           row.Date,
		Content:        row.Content,
		ContentSnippet: row.ContentSnippet,
		ImageURL:       row.ImageURL,
		Likes:          row.Likes,
		Comments:       []models.Comment{},
		Category:       row.Category,
		UserID:         userIDString(row.OwnerID),
	}
	for _, c := range comments {
		p.Comments = append(p.Comments, toComment(c))
	}
	return p
}

// Load seeds the database from pre-built records: users and posts become
// rows, post comments become comment rows, and users' liked sets become like
// rows. Seed IDs must follow the "user-N"/"post-N" shape.
func Load(users []*models.User, posts []*models.Post) error {
	for _, u := range users {
		id, err := parseID(u.ID, "user-")
		if err != nil {
			return fmt.Errorf("seed user: %v", err)
		}
		row := userRow{
			ID:       id,
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			Role:     string(u.Role),
		}
		if err := DB.Create(&row).Error; err != nil {
			return fmt.Errorf("seed user %s: %v", u.ID, err)
		}
	}

	for _, p := range posts {
		id, err := parseID(p.ID, "post-")
		if err != nil {
			return fmt.Errorf("seed post: %v", err)
		}
		ownerID, err := parseID(p.UserID, "user-")
		if err != nil {
			return fmt.Errorf("seed post %s: %v", p.ID, err)
		}
		row := postRow{
			ID:             id,
			Title:          p.Title,
			Author:         p.Author,
			Date:           p.Date,
			Content:        p.Content,
			ContentSnippet: p.ContentSnippet,
			ImageURL:       p.ImageURL,
			Likes:          p.Likes,
			Category:       p.Category,
			OwnerID:        ownerID,
		}
		if err := DB.Create(&row).Error; err != nil {
			return fmt.Errorf("seed post %s: %v", p.ID, err)
		}

		for _, c := range p.Comments {
			authorID, err := parseID(c.UserID, "user-")
			if err != nil {
				return fmt.Errorf("seed comment %s: %v", c.ID, err)
			}
			crow := commentRow{
				CommentID: c.ID,
				PostID:    id,
				UserID:    authorID,
				Author:    c.Author,
				Text:      c.Text,
			}
			if err := DB.Create(&crow).Error; err != nil {
				return fmt.Errorf("seed comment %s: %v", c.ID, err)
			}
		}
	}

	for _, u := range users {
		userID, _ := parseID(u.ID, "user-")
		for _, pid := range u.LikedPostIDs {
			postID, err := parseID(pid, "post-")
			if err != nil {
				return fmt.Errorf("seed like: %v", err)
			}
			if err := DB.Create(&likeRow{UserID: userID, PostID: postID}).Error; err != nil {
				return fmt.Errorf("seed like %s/%s: %v", u.ID, pid, err)
			}
		}
	}

	return nil
}
