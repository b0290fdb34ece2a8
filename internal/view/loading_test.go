package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoading(t *testing.T) {
	t.Run("Done fires after the delay", func(t *testing.T) {
		fired := make(chan struct{})
		StartLoading(10*time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("loading callback never fired")
		}
	})

	t.Run("Stop prevents the callback", func(t *testing.T) {
		fired := make(chan struct{})
		l := StartLoading(50*time.Millisecond, func() { close(fired) })

		assert.True(t, l.Stop())

		select {
		case <-fired:
			t.Fatal("callback fired after Stop")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Stop after firing reports false", func(t *testing.T) {
		fired := make(chan struct{})
		l := StartLoading(time.Millisecond, func() { close(fired) })
		<-fired
		assert.False(t, l.Stop())
	})

	t.Run("Restart re-arms a stopped timer", func(t *testing.T) {
		fired := make(chan struct{})
		l := StartLoading(time.Hour, func() { close(fired) })
		l.Stop()
		l.Restart(10 * time.Millisecond)

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("restarted timer never fired")
		}
	})
}
