package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

// CastVote records userID's vote for linkID. At most one vote may exist
// per (user, link) pair: the lookup below rejects the common case, and
// the composite unique index on votes settles the race when two requests
// for the same pair pass the lookup concurrently.
func (s *Store) CastVote(userID, linkID int) (models.Vote, error) {
	var link models.Link
	if err := s.db.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vote{}, ErrLinkNotFound
		}
		return models.Vote{}, fmt.Errorf("look up link: %w", err)
	}

	var existing models.Vote
	err := s.db.Where("user_id = ? AND link_id = ?", userID, linkID).First(&existing).Error
	if err == nil {
		return models.Vote{}, ErrAlreadyVoted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vote{}, fmt.Errorf("look up vote: %w", err)
	}

	vote := models.Vote{
		UserID: userID,
		LinkID: linkID,
	}

	if err := s.db.Create(&vote).Error; err != nil {
		// A concurrent request may have inserted between the lookup and
		// here; the unique index reports that as a duplicated key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Vote{}, ErrAlreadyVoted
		}
		return models.Vote{}, fmt.Errorf("create vote: %w", err)
	}

	// Reload with user and link information
	if err := s.db.Preload("User").Preload("Link").First(&vote, vote.ID).Error; err != nil {
		return models.Vote{}, fmt.Errorf("reload vote: %w", err)
	}

	return vote, nil
}
