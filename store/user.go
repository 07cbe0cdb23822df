package store

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

type UserStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewUserStore(db *gorm.DB, logger *log.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

// CreateIfAbsent inserts the user unless an account with the same email
// already exists. Returns false without error when the account was already
// there.
func (s *UserStore) CreateIfAbsent(user *models.User) (bool, error) {
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := s.db.Create(user).Error; err != nil {
		return false, err
	}
	s.logger.Printf("created user %s", user.Email)
	return true, nil
}

// Patch merge-updates the given fields on the account keyed by email and
// returns the number of matched rows.
func (s *UserStore) Patch(email string, fields map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.User{}).Where("email = ?", email).Updates(fields)
	return res.RowsAffected, res.Error
}

// List returns all accounts, optionally filtered by role.
func (s *UserStore) List(role models.Role) ([]models.User, error) {
	var users []models.User
	q := s.db
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail returns the account or nil when no such account exists.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
