package events

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

func newTestHub() *Hub {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHub(log)
}

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	hub := newTestHub()

	sub1 := hub.Subscribe()
	sub2 := hub.Subscribe()
	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(Event{Kind: KindNewLink, Payload: models.Link{ID: 1}})

	for _, sub := range []*Subscriber{sub1, sub2} {
		select {
		case event := <-sub.C:
			assert.Equal(t, KindNewLink, event.Kind)
		default:
			t.Fatalf("subscriber %s received nothing", sub.ID)
		}
	}
}

func TestPublishDropsWhenSubscriberLags(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe()

	// Fill the buffer without draining, then publish once more
	for i := 0; i < subscriberBuffer+3; i++ {
		hub.Publish(Event{Kind: KindNewVote, Payload: i})
	}

	assert.Equal(t, subscriberBuffer, len(sub.C), "overflow events are dropped, not queued")

	// The hub itself must never block
	hub.Publish(Event{Kind: KindNewVote, Payload: "still alive"})
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.C
	assert.False(t, open)

	// Unsubscribing twice must not panic
	hub.Unsubscribe(sub)

	// Publishing after unsubscribe reaches nobody and does not panic
	hub.Publish(Event{Kind: KindNewLink, Payload: nil})
}

func TestFeedViewMergeIsIdempotent(t *testing.T) {
	view := NewFeedView()

	linkA := models.Link{ID: 1, URL: "https://a.example.com"}
	linkB := models.Link{ID: 2, URL: "https://b.example.com"}

	assert.True(t, view.Merge(linkA))
	assert.True(t, view.Merge(linkB))

	// A replayed delivery of the same link is a no-op
	assert.False(t, view.Merge(linkA))

	links := view.Links()
	require.Len(t, links, 2)
	assert.Equal(t, linkB.ID, links[0].ID, "newest link first")
	assert.Equal(t, linkA.ID, links[1].ID)
}
