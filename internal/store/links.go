package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

// CreateLink persists a new link. ownerID may be nil: anonymous
// submissions carry no owner.
func (s *Store) CreateLink(url, description string, ownerID *int) (models.Link, error) {
	if strings.TrimSpace(url) == "" {
		return models.Link{}, fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return models.Link{}, fmt.Errorf("%w: description must not be empty", ErrValidation)
	}

	link := models.Link{
		URL:         url,
		Description: description,
		PostedByID:  ownerID,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return models.Link{}, fmt.Errorf("create link: %w", err)
	}

	// Reload with owner information
	if link.PostedByID != nil {
		if err := s.db.Preload("PostedBy").First(&link, link.ID).Error; err != nil {
			return models.Link{}, fmt.Errorf("reload link: %w", err)
		}
	}

	return link, nil
}

func (s *Store) GetLink(id int) (models.Link, error) {
	var link models.Link
	if err := s.db.Preload("PostedBy").First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Link{}, ErrLinkNotFound
		}
		return models.Link{}, fmt.Errorf("get link: %w", err)
	}
	return link, nil
}

func (s *Store) ListLinks() ([]models.Link, error) {
	var links []models.Link
	err := s.db.Preload("PostedBy").
		Order("created_at desc, id desc").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}
