// Package store holds the core persistence logic: link creation and
// lookup, the one-vote-per-user-per-link ledger, and feed assembly.
// Handlers stay thin and map the sentinel errors here onto HTTP statuses.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrAlreadyVoted = errors.New("already voted for this link")
	ErrValidation   = errors.New("invalid input")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
