package store

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"pluggedin/models"
)

type RoomStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewRoomStore(db *gorm.DB, logger *log.Logger) *RoomStore {
	return &RoomStore{db: db, logger: logger}
}

// Create inserts the room unless one with the same name exists. Returns false
// without error for the duplicate case.
func (s *RoomStore) Create(room *models.Room) (bool, error) {
	var existing models.Room
	err := s.db.Where("room_name = ?", room.RoomName).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.db.Create(room).Error; err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByName removes the room and its message history, returning the number
// of rooms deleted.
func (s *RoomStore) DeleteByName(roomName string) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Where("room_name = ?", roomName).First(&room).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Unscoped().Where("room_id = ?", room.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&room)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

// AppendMessage appends to the room's history, creating the room first when
// it does not exist yet.
func (s *RoomStore) AppendMessage(roomName, sender, text string, sentAt time.Time) error {
	if sentAt.IsZero() {
		sentAt = time.Now()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		room := models.Room{RoomName: roomName}
		if err := tx.Where("room_name = ?", roomName).FirstOrCreate(&room).Error; err != nil {
			return err
		}
		msg := models.Message{
			RoomID: room.ID,
			Sender: sender,
			Text:   text,
			SentAt: sentAt,
		}
		return tx.Create(&msg).Error
	})
}

// MessagesOf returns the room's history in insertion order, or nil when the
// room does not exist.
func (s *RoomStore) MessagesOf(roomName string) ([]models.Message, error) {
	var room models.Room
	err := s.db.Where("room_name = ?", roomName).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := s.db.Where("room_id = ?", room.ID).Order("id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListRooms returns every room with its history preloaded in insertion order.
func (s *RoomStore) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
