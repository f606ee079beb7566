package models

import "time"

// Link is a submitted URL. PostedBy is nullable: anonymous submissions
// are allowed and carry no owner.
type Link struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	URL         string    `gorm:"not null" json:"url"`
	Description string    `gorm:"not null" json:"description"`
	PostedByID  *int      `json:"posted_by_id,omitempty"`
	PostedBy    *User     `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateLinkRequest struct {
	URL         string `json:"url" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// LinkWithVotes annotates a link with its vote count and the identities
// of its voters, so clients can render "did I vote" without a roundtrip.
type LinkWithVotes struct {
	Link
	Votes    int   `json:"votes"`
	VoterIDs []int `json:"voter_ids"`
}

type FeedResponse struct {
	Links []LinkWithVotes `json:"links"`
	Count int64           `json:"count"`
}
