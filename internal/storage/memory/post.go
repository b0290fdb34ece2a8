package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/post"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// PostMemoryStorage keeps posts in a mutex-guarded map plus a creation-order
// index so listings are deterministic. IDs are monotonic and never reused,
// even after deletions.
type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[string]*models.Post
	order  []string
	nextID int
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[string]*models.Post),
		nextID: 1,
	}
}

// Load seeds the store with pre-built records and advances the ID counter
// past the highest seeded one.
func (s *PostMemoryStorage) Load(posts []*models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range posts {
		s.posts[p.ID] = p
		s.order = append(s.order, p.ID)
		if n := idSeq(p.ID, "post-"); n >= s.nextID {
			s.nextID = n + 1
		}
	}
}

func (s *PostMemoryStorage) Create(ctx context.Context, author string, in post.Input) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("post-%d", s.nextID)
	s.nextID++

	p := &models.Post{
		ID:             id,
		Title:          in.Title,
		Author:         author,
		Date:           time.Now().Format("2006-01-02"),
		Content:        in.Content,
		ContentSnippet: in.ContentSnippet,
		ImageURL:       in.ImageURL,
		Likes:          0,
		Comments:       []models.Comment{},
		Category:       in.Category,
		UserID:         userID,
	}
	s.posts[id] = p
	s.order = append(s.order, id)

	return p, nil
}

func (s *PostMemoryStorage) GetByID(id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	return p, nil
}

func (s *PostMemoryStorage) GetAll() ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*models.Post, 0, len(s.order))
	for _, id := range s.order {
		posts = append(posts, s.posts[id])
	}
	return posts, nil
}

// Update replaces the editable fields only. Ownership, date, likes and
// comments survive the edit untouched.
func (s *PostMemoryStorage) Update(ctx context.Context, id string, in post.Input) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotOwner)
	}

	p.Title = in.Title
	p.Content = in.Content
	p.ContentSnippet = in.ContentSnippet
	p.ImageURL = in.ImageURL
	p.Category = in.Category

	return p, nil
}

func (s *PostMemoryStorage) Delete(ctx context.Context, id string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotOwner)
	}

	delete(s.posts, id)
	s.order = removeID(s.order, id)

	return p, nil
}

func (s *PostMemoryStorage) AdjustLikes(id string, delta int) (int, error) {
	if delta != 1 && delta != -1 {
		return 0, fmt.Errorf("adjust likes: delta must be +1 or -1, got %d", delta)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return 0, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	return p.Likes, nil
}

// appendComment is used by the comment store sharing this backend.
func (s *PostMemoryStorage) appendComment(postID string, c models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return fmt.Errorf("post %s: %w", postID, post.ErrNotFound)
	}
	p.Comments = append(p.Comments, c)
	return nil
}
