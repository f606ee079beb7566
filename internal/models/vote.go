package models

import "time"

// Vote joins exactly one user and one link. The composite unique index on
// (user_id, link_id) is the storage-level guarantee that a pair votes at
// most once, even across concurrent requests and server processes.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_votes_user_link" json:"user_id"`
	LinkID    int       `gorm:"not null;uniqueIndex:idx_votes_user_link" json:"link_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Link      Link      `gorm:"foreignKey:LinkID" json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
