package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/events"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/store"
)

type VoteHandler struct {
	store *store.Store
	hub   *events.Hub
}

func NewVoteHandler(st *store.Store, hub *events.Hub) *VoteHandler {
	return &VoteHandler{store: st, hub: hub}
}

// Vote casts the caller's vote for a link (PROTECTED - requires authentication)
func (h *VoteHandler) Vote(c *gin.Context) {
	linkID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	vote, err := h.store.CastVote(userID, linkID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		case errors.Is(err, store.ErrAlreadyVoted):
			c.JSON(http.StatusConflict, gin.H{"error": "Already voted for this link"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
		}
		return
	}

	h.hub.Publish(events.Event{Kind: events.KindNewVote, Payload: vote})

	c.JSON(http.StatusCreated, vote)
}
