package store

import (
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

type TaskStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewTaskStore(db *gorm.DB, logger *log.Logger) *TaskStore {
	return &TaskStore{db: db, logger: logger}
}

func (s *TaskStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

// ListByMedia returns the tasks attached to a media record.
func (s *TaskStore) ListByMedia(mediaID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("media_id = ?", mediaID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update sets the provided fields on an existing task. Nil pointers leave the
// field untouched. A missing id is reported through the zero row count.
func (s *TaskStore) Update(id uint, done *bool, details *string) (int64, error) {
	fields := map[string]interface{}{}
	if done != nil {
		fields["done"] = *done
	}
	if details != nil {
		fields["details"] = *details
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes the task and returns the number of rows deleted.
func (s *TaskStore) Delete(id uint) (int64, error) {
	res := s.db.Unscoped().Delete(&models.Task{}, id)
	return res.RowsAffected, res.Error
}
