package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	t.Run("Subscriber receives published events", func(t *testing.T) {
		ch, cancel := hub.Subscribe()
		defer cancel()

		hub.Publish(Event{Kind: KindPostCreated, PostID: "post-1", UserID: "user-1"})

		e := <-ch
		assert.Equal(t, KindPostCreated, e.Kind)
		assert.Equal(t, "post-1", e.PostID)
		assert.Equal(t, "user-1", e.UserID)
	})

	t.Run("All subscribers receive the same event", func(t *testing.T) {
		first, cancelFirst := hub.Subscribe()
		second, cancelSecond := hub.Subscribe()
		defer cancelFirst()
		defer cancelSecond()

		hub.Publish(Event{Kind: KindCommentAdded, PostID: "post-2"})

		assert.Equal(t, KindCommentAdded, (<-first).Kind)
		assert.Equal(t, KindCommentAdded, (<-second).Kind)
	})

	t.Run("Cancel closes the channel and stops delivery", func(t *testing.T) {
		ch, cancel := hub.Subscribe()
		cancel()

		_, open := <-ch
		assert.False(t, open)

		// Publishing after cancel must not panic on the closed channel.
		hub.Publish(Event{Kind: KindPostDeleted, PostID: "post-3"})
	})

	t.Run("Cancel is safe to call twice", func(t *testing.T) {
		_, cancel := hub.Subscribe()
		cancel()
		cancel()
	})

	t.Run("Slow subscriber does not block the publisher", func(t *testing.T) {
		ch, cancel := hub.Subscribe()
		defer cancel()

		// Overflow the buffer; every call must return immediately.
		for i := 0; i < 20; i++ {
			hub.Publish(Event{Kind: KindPostLiked, PostID: "post-4"})
		}

		// The buffered prefix is still there.
		require.Equal(t, 8, len(ch))
	})
}
