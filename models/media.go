package models

import "gorm.io/gorm"

// MediaRecord represents a shared piece of media, keyed by its URL.
type MediaRecord struct {
	gorm.Model

	MediaURL    string `gorm:"uniqueIndex;not null" json:"mediaUrl"`
	AuthorEmail string `gorm:"index" json:"authorEmail"`
	Title       string `json:"title"`
}

// Task is a checklist item attached to a media record.
type Task struct {
	gorm.Model

	MediaID uint   `gorm:"not null;index" json:"media_id"`
	Done    bool   `gorm:"default:false" json:"done"`
	Details string `json:"details"`
}

// Review is an append-only user review; there is no update path.
type Review struct {
	gorm.Model

	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}
