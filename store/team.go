package store

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

type TeamStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewTeamStore(db *gorm.DB, logger *log.Logger) *TeamStore {
	return &TeamStore{db: db, logger: logger}
}

// Create inserts the team unless one with the same name and leader exists.
// Returns false without error for the duplicate case.
func (s *TeamStore) Create(team *models.Team) (bool, error) {
	var existing models.Team
	err := s.db.Where("name = ? AND leader = ?", team.Name, team.Leader).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.db.Create(team).Error; err != nil {
		return false, err
	}
	return true, nil
}

// PatchByLeader merge-updates the team led by the given email and returns the
// number of matched rows. Members are marshalled by hand because map updates
// bypass the model's json serializer.
func (s *TeamStore) PatchByLeader(leaderEmail string, name *string, members *[]string) (int64, error) {
	fields := map[string]interface{}{}
	if name != nil {
		fields["name"] = *name
	}
	if members != nil {
		encoded, err := json.Marshal(*members)
		if err != nil {
			return 0, err
		}
		fields["members"] = string(encoded)
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Team{}).Where("leader = ?", leaderEmail).Updates(fields)
	return res.RowsAffected, res.Error
}

// GetByLeader returns the team led by the given email, or nil when absent.
func (s *TeamStore) GetByLeader(leaderEmail string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("leader = ?", leaderEmail).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}
