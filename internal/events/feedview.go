package events

import (
	"sync"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

// FeedView is a subscriber-side mirror of the link feed. Incoming
// new-link events are deduplicated by link ID, so a replayed or
// duplicated delivery leaves the view unchanged.
type FeedView struct {
	mu    sync.Mutex
	seen  map[int]struct{}
	links []models.Link
}

func NewFeedView() *FeedView {
	return &FeedView{seen: make(map[int]struct{})}
}

// Merge prepends the link to the view, newest first. It reports whether
// the link was actually added.
func (v *FeedView) Merge(link models.Link) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.seen[link.ID]; ok {
		return false
	}
	v.seen[link.ID] = struct{}{}
	v.links = append([]models.Link{link}, v.links...)
	return true
}

// Links returns a copy of the current view, newest first.
func (v *FeedView) Links() []models.Link {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Link, len(v.links))
	copy(out, v.links)
	return out
}
