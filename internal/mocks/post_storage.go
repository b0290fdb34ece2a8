package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sai-shivani-9/blogging-platform/internal/auth"
	"github.com/sai-shivani-9/blogging-platform/internal/post"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// MockPostStorage is a minimal in-memory fake of post.PostStorage for
// coordinator tests.
type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[string]*models.Post
	order  []string
	nextID int
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[string]*models.Post),
		nextID: 1,
	}
}

// Add inserts a pre-built post, for test setup.
func (m *MockPostStorage) Add(p *models.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[p.ID] = p
	m.order = append(m.order, p.ID)
}

func (m *MockPostStorage) Create(ctx context.Context, author string, in post.Input) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := fmt.Sprintf("post-%d", m.nextID)
	m.nextID++
	p := &models.Post{
		ID:             id,
		Title:          in.Title,
		Author:         author,
		Date:           time.Now().Format("2006-01-02"),
		Content:        in.Content,
		ContentSnippet: in.ContentSnippet,
		ImageURL:       in.ImageURL,
		Comments:       []models.Comment{},
		Category:       in.Category,
		UserID:         userID,
	}
	m.posts[id] = p
	m.order = append(m.order, id)
	return p, nil
}

func (m *MockPostStorage) GetByID(id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	return p, nil
}

func (m *MockPostStorage) GetAll() ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		posts = append(posts, m.posts[id])
	}
	return posts, nil
}

func (m *MockPostStorage) Update(ctx context.Context, id string, in post.Input) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	if p.UserID != userID {
		return nil, post.ErrNotOwner
	}
	p.Title = in.Title
	p.Content = in.Content
	p.ContentSnippet = in.ContentSnippet
	p.ImageURL = in.ImageURL
	p.Category = in.Category
	return p, nil
}

func (m *MockPostStorage) Delete(ctx context.Context, id string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	if p.UserID != userID {
		return nil, post.ErrNotOwner
	}
	delete(m.posts, id)
	m.order = removeID(m.order, id)
	return p, nil
}

func (m *MockPostStorage) AdjustLikes(id string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return 0, post.ErrNotFound
	}
	p.Likes += delta
	return p.Likes, nil
}
