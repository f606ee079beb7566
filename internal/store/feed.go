package store

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

const (
	// OrderNew sorts by creation time descending, paginated.
	OrderNew = "new"
	// OrderTop sorts by vote count descending over a bounded set.
	OrderTop = "top"

	// TopFeedCap bounds the eligible set for the top view.
	TopFeedCap = 100
)

type FeedParams struct {
	Filter  string
	Skip    int
	Take    int
	OrderBy string
}

type FeedPage struct {
	Links []models.LinkWithVotes
	Count int64
}

// GetFeed assembles a page of links annotated with vote counts and voter
// identities. The "new" ordering is windowed by skip/take and ties on
// created_at fall back to id so repeated queries return identical
// windows. The "top" ordering ranks by vote count over at most
// TopFeedCap links, ties broken by creation time descending.
func (s *Store) GetFeed(params FeedParams) (FeedPage, error) {
	filtered := func() *gorm.DB {
		q := s.db.Model(&models.Link{})
		if params.Filter != "" {
			pattern := "%" + params.Filter + "%"
			q = q.Where("url LIKE ? OR description LIKE ?", pattern, pattern)
		}
		return q
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return FeedPage{}, fmt.Errorf("count links: %w", err)
	}

	var links []models.Link
	switch params.OrderBy {
	case OrderTop:
		// Fetch the bounded eligible set; ranking happens once the vote
		// counts are known.
		err := filtered().Preload("PostedBy").
			Order("created_at desc, id desc").
			Limit(TopFeedCap).
			Find(&links).Error
		if err != nil {
			return FeedPage{}, fmt.Errorf("fetch top links: %w", err)
		}
	default:
		q := filtered().Preload("PostedBy").
			Order("created_at desc, id desc").
			Offset(params.Skip)
		if params.Take > 0 {
			q = q.Limit(params.Take)
		}
		if err := q.Find(&links).Error; err != nil {
			return FeedPage{}, fmt.Errorf("fetch links: %w", err)
		}
	}

	annotated, err := s.annotateVotes(links)
	if err != nil {
		return FeedPage{}, err
	}

	if params.OrderBy == OrderTop {
		sort.SliceStable(annotated, func(i, j int) bool {
			if annotated[i].Votes != annotated[j].Votes {
				return annotated[i].Votes > annotated[j].Votes
			}
			if !annotated[i].CreatedAt.Equal(annotated[j].CreatedAt) {
				return annotated[i].CreatedAt.After(annotated[j].CreatedAt)
			}
			return annotated[i].ID > annotated[j].ID
		})
		if params.Take > 0 && params.Take < len(annotated) {
			annotated = annotated[:params.Take]
		}
	}

	return FeedPage{Links: annotated, Count: count}, nil
}

// annotateVotes resolves vote counts and voter identities for a batch of
// links with a single query.
func (s *Store) annotateVotes(links []models.Link) ([]models.LinkWithVotes, error) {
	annotated := make([]models.LinkWithVotes, 0, len(links))
	if len(links) == 0 {
		return annotated, nil
	}

	ids := make([]int, len(links))
	for i, link := range links {
		ids[i] = link.ID
	}

	var votes []models.Vote
	err := s.db.Where("link_id IN ?", ids).
		Order("created_at asc, id asc").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("fetch votes: %w", err)
	}

	voters := make(map[int][]int)
	for _, vote := range votes {
		voters[vote.LinkID] = append(voters[vote.LinkID], vote.UserID)
	}

	for _, link := range links {
		voterIDs := voters[link.ID]
		// Empty array, not null, for links without votes
		if voterIDs == nil {
			voterIDs = []int{}
		}
		annotated = append(annotated, models.LinkWithVotes{
			Link:     link,
			Votes:    len(voterIDs),
			VoterIDs: voterIDs,
		})
	}

	return annotated, nil
}
