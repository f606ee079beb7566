package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/events"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/store"
)

type LinkHandler struct {
	store *store.Store
	hub   *events.Hub
}

func NewLinkHandler(st *store.Store, hub *events.Hub) *LinkHandler {
	return &LinkHandler{store: st, hub: hub}
}

// CreateLink submits a new link. Anonymous submissions are allowed: when
// the request carries no identity claim the link has no owner.
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var input models.CreateLinkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ownerID *int
	if userID, ok := currentUserID(c); ok {
		ownerID = &userID
	}

	link, err := h.store.CreateLink(input.URL, input.Description, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	h.hub.Publish(events.Event{Kind: events.KindNewLink, Payload: link})

	c.JSON(http.StatusCreated, link)
}

// GetLink returns a single link by ID
func (h *LinkHandler) GetLink(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link id"})
		return
	}

	link, err := h.store.GetLink(id)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link"})
		return
	}

	c.JSON(http.StatusOK, link)
}

// ListLinks returns all links, newest first
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.store.ListLinks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}

	// If no links, return empty array not null
	if links == nil {
		links = []models.Link{}
	}

	c.JSON(http.StatusOK, links)
}
