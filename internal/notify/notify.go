package notify

import "sync"

// Kind of committed store change.
type Kind string

const (
	KindUserRegistered Kind = "user-registered"
	KindProfileUpdated Kind = "profile-updated"
	KindPostCreated    Kind = "post-created"
	KindPostUpdated    Kind = "post-updated"
	KindPostDeleted    Kind = "post-deleted"
	KindPostLiked      Kind = "post-liked"
	KindCommentAdded   Kind = "comment-added"
)

// Event describes a single committed mutation of the entity store. Views
// subscribe to re-derive what they render; an event carries identifiers only,
// never entity state.
type Event struct {
	Kind   Kind
	PostID string
	UserID string
}

type Notifier interface {
	Subscribe() (<-chan Event, func())
	Publish(e Event)
}

// Hub fans store-change events out to subscribed views.
type Hub struct {
	mu   sync.Mutex
	subs []chan Event
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The channel is buffered so publishers are not held up by a
// subscriber that is mid-render.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 8)
	h.subs = append(h.subs, ch)

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.subs {
			if sub == ch {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				close(ch)
				break
			}
		}
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber. A subscriber whose buffer
// is full misses the event rather than blocking the mutation path.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub <- e:
		default:
		}
	}
}
