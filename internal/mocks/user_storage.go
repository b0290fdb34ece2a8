package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sai-shivani-9/blogging-platform/internal/user"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// MockUserStorage is a minimal in-memory fake of user.UserStorage for
// coordinator tests.
type MockUserStorage struct {
	mu     sync.Mutex
	users  map[string]*models.User
	order  []string
	nextID int

	// ForgetPostCalls records the sweep arguments for assertions.
	ForgetPostCalls []string
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:  make(map[string]*models.User),
		nextID: 1,
	}
}

// Add inserts a pre-built user, for test setup.
func (m *MockUserStorage) Add(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	m.order = append(m.order, u.ID)
}

func (m *MockUserStorage) Register(username, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return nil, user.ErrUsernameTaken
		}
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return nil, user.ErrEmailTaken
		}
	}

	id := fmt.Sprintf("user-%d", m.nextID)
	m.nextID++
	u := &models.User{
		ID:             id,
		Username:       username,
		Email:          email,
		Password:       password,
		Role:           models.RoleUser,
		CreatedPostIDs: []string{},
		LikedPostIDs:   []string{},
		MadeCommentIDs: []string{},
	}
	m.users[id] = u
	m.order = append(m.order, id)
	return u, nil
}

func (m *MockUserStorage) Authenticate(username, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, user.ErrInvalidCredentials
}

func (m *MockUserStorage) GetByID(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *MockUserStorage) GetAll() ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*models.User, 0, len(m.order))
	for _, id := range m.order {
		users = append(users, m.users[id])
	}
	return users, nil
}

func (m *MockUserStorage) UpdateProfile(id, username, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	u.Username = username
	u.Email = email
	return u, nil
}

func (m *MockUserStorage) LinkPost(userID, postID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.CreatedPostIDs = append(u.CreatedPostIDs, postID)
	return nil
}

func (m *MockUserStorage) LinkComment(userID, commentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.MadeCommentIDs = append(u.MadeCommentIDs, commentID)
	return nil
}

func (m *MockUserStorage) SetLiked(userID, postID string, liked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.LikedPostIDs = removeID(u.LikedPostIDs, postID)
	if liked {
		u.LikedPostIDs = append(u.LikedPostIDs, postID)
	}
	return nil
}

func (m *MockUserStorage) HasLiked(userID, postID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return false, user.ErrNotFound
	}
	for _, id := range u.LikedPostIDs {
		if id == postID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserStorage) ForgetPost(postID string, commentIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ForgetPostCalls = append(m.ForgetPostCalls, postID)
	for _, u := range m.users {
		u.CreatedPostIDs = removeID(u.CreatedPostIDs, postID)
		u.LikedPostIDs = removeID(u.LikedPostIDs, postID)
		for _, cid := range commentIDs {
			u.MadeCommentIDs = removeID(u.MadeCommentIDs, cid)
		}
	}
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
