package store

import (
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

// ReviewStore is append-only; reviews are never edited or deleted.
type ReviewStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewReviewStore(db *gorm.DB, logger *log.Logger) *ReviewStore {
	return &ReviewStore{db: db, logger: logger}
}

func (s *ReviewStore) Create(review *models.Review) error {
	return s.db.Create(review).Error
}

func (s *ReviewStore) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
