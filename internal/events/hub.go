// Package events implements the change notifier: a publish/subscribe hub
// that fans "new link" and "new vote" events out to live subscribers.
// Delivery is best-effort; there is no durable queue and no replay.
package events

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	KindNewLink = "new_link"
	KindNewVote = "new_vote"
)

// subscriberBuffer is how many undelivered events a subscriber may lag
// behind before it starts missing events.
const subscriberBuffer = 16

type Event struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

type Subscriber struct {
	ID string
	C  chan Event
}

type Hub struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber
	log  *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		subs: make(map[string]*Subscriber),
		log:  log,
	}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		ID: uuid.NewString(),
		C:  make(chan Event, subscriberBuffer),
	}
	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes the subscriber and closes its channel. Safe to call
// more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.ID]; ok {
		delete(h.subs, sub.ID)
		close(sub.C)
	}
}

// Publish fans the event out to every live subscriber without blocking:
// a subscriber whose buffer is full misses the event.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		select {
		case sub.C <- event:
		default:
			h.log.WithFields(logrus.Fields{
				"subscriber": sub.ID,
				"kind":       event.Kind,
			}).Warn("subscriber buffer full, dropping event")
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
