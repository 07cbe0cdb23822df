package models

import "gorm.io/gorm"

// Team represents a user-created team. No two teams may share the same
// (name, leader) pair.
type Team struct {
	gorm.Model

	Name    string   `gorm:"not null;uniqueIndex:idx_team_name_leader" json:"name"`
	Leader  string   `gorm:"not null;uniqueIndex:idx_team_name_leader" json:"leader"`
	Members []string `gorm:"serializer:json" json:"members"`
}
