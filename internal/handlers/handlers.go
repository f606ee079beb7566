package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/events"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Auth   *AuthHandler
	Link   *LinkHandler
	Feed   *FeedHandler
	Vote   *VoteHandler
	Events *EventsHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, hub *events.Hub) *Handler {
	st := store.New(db)

	return &Handler{
		Auth:   NewAuthHandler(db),
		Link:   NewLinkHandler(st, hub),
		Feed:   NewFeedHandler(st),
		Vote:   NewVoteHandler(st, hub),
		Events: NewEventsHandler(hub),
	}
}

// currentUserID returns the authenticated caller's ID, if any.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case int:
		return id, true
	case uint:
		return int(id), true
	case float64:
		return int(id), true
	}
	return 0, false
}
