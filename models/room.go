package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is a named chat channel holding an ordered message history.
type Room struct {
	gorm.Model

	RoomName string    `gorm:"uniqueIndex;not null" json:"roomName"`
	Messages []Message `gorm:"foreignKey:RoomID" json:"messages,omitempty"`
}

// Message is one entry in a room's history, ordered by insertion.
type Message struct {
	gorm.Model

	RoomID uint      `gorm:"not null;index" json:"-"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"timestamp"`
}
