package store

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

type MediaStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewMediaStore(db *gorm.DB, logger *log.Logger) *MediaStore {
	return &MediaStore{db: db, logger: logger}
}

// Create inserts the record unless one with the same media URL exists.
// Returns false without error for the duplicate case.
func (s *MediaStore) Create(media *models.MediaRecord) (bool, error) {
	var existing models.MediaRecord
	err := s.db.Where("media_url = ?", media.MediaURL).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.db.Create(media).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByAuthor returns every record posted by the given author email.
func (s *MediaStore) ListByAuthor(email string) ([]models.MediaRecord, error) {
	var records []models.MediaRecord
	if err := s.db.Where("author_email = ?", email).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID returns the record or nil when absent.
func (s *MediaStore) GetByID(id uint) (*models.MediaRecord, error) {
	var media models.MediaRecord
	err := s.db.First(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// UpdateTitle sets the title on an existing record. A missing id is reported
// through the zero row count, never by creating a partial record.
func (s *MediaStore) UpdateTitle(id uint, title string) (int64, error) {
	res := s.db.Model(&models.MediaRecord{}).Where("id = ?", id).Update("title", title)
	return res.RowsAffected, res.Error
}

// Delete removes the record and returns the number of rows deleted.
func (s *MediaStore) Delete(id uint) (int64, error) {
	// Hard delete so the media URL can be posted again.
	res := s.db.Unscoped().Delete(&models.MediaRecord{}, id)
	return res.RowsAffected, res.Error
}
