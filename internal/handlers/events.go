package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/events"
)

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream serves the live new_link/new_vote feed over server-sent events.
// The subscription lives as long as the client connection.
func (h *EventsHandler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(event.Kind, event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
