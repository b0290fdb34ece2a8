package memory

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sai-shivani-9/blogging-platform/internal/user"
	"github.com/sai-shivani-9/blogging-platform/models"
)

// UserMemoryStorage keeps accounts in a mutex-guarded map keyed by ID.
type UserMemoryStorage struct {
	mu     sync.Mutex
	users  map[string]*models.User
	order  []string
	nextID int
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:  make(map[string]*models.User),
		nextID: 1,
	}
}

// Load seeds the store with pre-built records and advances the ID counter
// past the highest seeded one.
func (s *UserMemoryStorage) Load(users []*models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		s.users[u.ID] = u
		s.order = append(s.order, u.ID)
		if n := idSeq(u.ID, "user-"); n >= s.nextID {
			s.nextID = n + 1
		}
	}
}

func (s *UserMemoryStorage) Register(username, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return nil, fmt.Errorf("register %s: %w", username, user.ErrUsernameTaken)
		}
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, fmt.Errorf("register %s: %w", username, user.ErrEmailTaken)
		}
	}

	id := fmt.Sprintf("user-%d", s.nextID)
	s.nextID++

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
	s.users[id] = u
	s.order = append(s.order, id)

	return u, nil
}

// Authenticate matches username and password exactly. Unlike uniqueness,
// the username comparison here is case-sensitive.
func (s *UserMemoryStorage) Authenticate(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, user.ErrInvalidCredentials
}

func (s *UserMemoryStorage) GetByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}
	return u, nil
}

func (s *UserMemoryStorage) GetAll() ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id])
	}
	return users, nil
}

func (s *UserMemoryStorage) UpdateProfile(id, username, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}

	// Uniqueness holds on update too, not just at registration.
	for _, other := range s.users {
		if other.ID == id {
			continue
		}
		if strings.EqualFold(other.Username, username) {
			return nil, fmt.Errorf("update profile %s: %w", id, user.ErrUsernameTaken)
		}
	}
	for _, other := range s.users {
		if other.ID == id {
			continue
		}
		if strings.EqualFold(other.Email, email) {
			return nil, fmt.Errorf("update profile %s: %w", id, user.ErrEmailTaken)
		}
	}

	u.Username = username
	u.Email = email
	return u, nil
}

func (s *UserMemoryStorage) LinkPost(userID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	u.CreatedPostIDs = addID(u.CreatedPostIDs, postID)
	return nil
}

func (s *UserMemoryStorage) LinkComment(userID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	u.MadeCommentIDs = addID(u.MadeCommentIDs, commentID)
	return nil
}

func (s *UserMemoryStorage) SetLiked(userID, postID string, liked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	if liked {
		u.LikedPostIDs = addID(u.LikedPostIDs, postID)
	} else {
		u.LikedPostIDs = removeID(u.LikedPostIDs, postID)
	}
	return nil
}

func (s *UserMemoryStorage) HasLiked(userID, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return false, fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	return containsID(u.LikedPostIDs, postID), nil
}

// ForgetPost sweeps every user's sets clean of a deleted post and its comments.
func (s *UserMemoryStorage) ForgetPost(postID string, commentIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		u.CreatedPostIDs = removeID(u.CreatedPostIDs, postID)
		u.LikedPostIDs = removeID(u.LikedPostIDs, postID)
		for _, cid := range commentIDs {
			u.MadeCommentIDs = removeID(u.MadeCommentIDs, cid)
		}
	}
	return nil
}

func addID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// idSeq parses the numeric tail of a "prefix-N" identifier, 0 if it has none.
func idSeq(id, prefix string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0
	}
	return n
}
