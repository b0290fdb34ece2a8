package models

// Role of a registered user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account together with its activity sets. The ID slices
// are ordered but treated as sets: an ID appears at most once. Passwords are
// stored and compared as entered.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Role           Role     `json:"role"`
	CreatedPostIDs []string `json:"createdPostIds"`
	LikedPostIDs   []string `json:"likedPostIds"`
	MadeCommentIDs []string `json:"madeCommentIds"`
}

// Post is a published blog entry. Author is the owner's display name at the
// time of publishing; UserID identifies the owner. Comments keep insertion
// order. Likes is adjusted only through the like toggle.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Content        string    `json:"content"`
	ContentSnippet string    `json:"contentSnippet"`
	ImageURL       string    `json:"imageUrl"`
	Likes          int       `json:"likes"`
	Comments       []Comment `json:"comments"`
	Category       string    `json:"category"`
	UserID         string    `json:"userId"`
}

type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	UserID string `json:"userId"`
	PostID string `json:"postId"`
}
