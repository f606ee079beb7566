package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/store"
)

const defaultFeedTake = 25

type FeedHandler struct {
	store *store.Store
}

func NewFeedHandler(st *store.Store) *FeedHandler {
	return &FeedHandler{store: st}
}

// GetFeed returns a page of links with vote annotations plus the total
// count, so the client can tell whether a further page exists.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}

	orderBy := c.DefaultQuery("orderBy", store.OrderNew)
	if orderBy != store.OrderNew && orderBy != store.OrderTop {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderBy must be \"new\" or \"top\""})
		return
	}

	// The top view is unpaginated: absent an explicit take it returns
	// the whole capped ranking.
	defaultTake := defaultFeedTake
	if orderBy == store.OrderTop {
		defaultTake = store.TopFeedCap
	}
	take, err := strconv.Atoi(c.DefaultQuery("take", strconv.Itoa(defaultTake)))
	if err != nil || take <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "take must be a positive integer"})
		return
	}

	page, err := h.store.GetFeed(store.FeedParams{
		Filter:  c.Query("filter"),
		Skip:    skip,
		Take:    take,
		OrderBy: orderBy,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	c.JSON(http.StatusOK, models.FeedResponse{
		Links: page.Links,
		Count: page.Count,
	})
}
