package store

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pluggedin/models"
)

// ConnectionStore manages the relationship edge between pairs of users.
// Every state transition touches a single row, so the two users' views of the
// graph can never disagree.
type ConnectionStore struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewConnectionStore(db *gorm.DB, logger *log.Logger) *ConnectionStore {
	return &ConnectionStore{db: db, logger: logger}
}

// Connect records a pending request from sender to receiver. Repeating the
// request, or connecting to an already-accepted friend, changes nothing.
func (s *ConnectionStore) Connect(senderEmail, receiverEmail string) error {
	// Attrs only apply on create; an existing edge keeps its status.
	var conn models.Connection
	return s.db.
		Where("sender_email = ? AND receiver_email = ?", senderEmail, receiverEmail).
		Attrs(models.Connection{
			SenderEmail:   senderEmail,
			ReceiverEmail: receiverEmail,
			Status:        models.ConnectionPending,
		}).
		FirstOrCreate(&conn).Error
}

// Accept moves a pending request to accepted and stamps the shared room
// identifier on the edge. Returns the room, or ErrNotPending when no request
// from sender to receiver exists.
func (s *ConnectionStore) Accept(senderEmail, receiverEmail string) (string, error) {
	room := models.RoomID(senderEmail, receiverEmail)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Connection{}).
			Where("sender_email = ? AND receiver_email = ? AND status = ?",
				senderEmail, receiverEmail, models.ConnectionPending).
			Updates(map[string]interface{}{
				"status": models.ConnectionAccepted,
				"room":   room,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Printf("accepted connection %s -> %s (room %s)", senderEmail, receiverEmail, room)
	return room, nil
}

// Cancel withdraws a pending request without creating a friendship.
func (s *ConnectionStore) Cancel(senderEmail, receiverEmail string) error {
	// Hard delete so the pair can connect again later without tripping the
	// unique index on soft-deleted rows.
	res := s.db.Unscoped().
		Where("sender_email = ? AND receiver_email = ? AND status = ?",
			senderEmail, receiverEmail, models.ConnectionPending).
		Delete(&models.Connection{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

// Disconnect removes an accepted friendship between the two users, whichever
// of them originally sent the request.
func (s *ConnectionStore) Disconnect(userEmail, friendEmail string) error {
	return s.db.Unscoped().
		Where("status = ? AND ((sender_email = ? AND receiver_email = ?) OR (sender_email = ? AND receiver_email = ?))",
			models.ConnectionAccepted, userEmail, friendEmail, friendEmail, userEmail).
		Delete(&models.Connection{}).Error
}

// IsPending reports whether userEmail has an outstanding request to
// candidateEmail.
func (s *ConnectionStore) IsPending(userEmail, candidateEmail string) (bool, error) {
	return s.exists(s.db.
		Where("sender_email = ? AND receiver_email = ? AND status = ?",
			userEmail, candidateEmail, models.ConnectionPending))
}

// IsFriend reports whether the two users share an accepted connection.
func (s *ConnectionStore) IsFriend(userEmail, candidateEmail string) (bool, error) {
	return s.exists(s.db.
		Where("status = ? AND ((sender_email = ? AND receiver_email = ?) OR (sender_email = ? AND receiver_email = ?))",
			models.ConnectionAccepted, userEmail, candidateEmail, candidateEmail, userEmail))
}

// RequestsFor returns the incoming requests the user has not yet acted on.
func (s *ConnectionStore) RequestsFor(email string) ([]models.ConnectionEntry, error) {
	var conns []models.Connection
	err := s.db.
		Where("receiver_email = ? AND status = ?", email, models.ConnectionPending).
		Order("id ASC").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.ConnectionEntry, 0, len(conns))
	for _, c := range conns {
		entries = append(entries, models.ConnectionEntry{Email: c.SenderEmail})
	}
	return entries, nil
}

// PendingOf returns the requests the user has sent that are still unanswered.
func (s *ConnectionStore) PendingOf(email string) ([]models.ConnectionEntry, error) {
	var conns []models.Connection
	err := s.db.
		Where("sender_email = ? AND status = ?", email, models.ConnectionPending).
		Order("id ASC").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.ConnectionEntry, 0, len(conns))
	for _, c := range conns {
		entries = append(entries, models.ConnectionEntry{Email: c.ReceiverEmail})
	}
	return entries, nil
}

// FriendsOf returns the user's accepted connections with their shared rooms.
func (s *ConnectionStore) FriendsOf(email string) ([]models.FriendEntry, error) {
	var conns []models.Connection
	err := s.db.
		Where("status = ? AND (sender_email = ? OR receiver_email = ?)",
			models.ConnectionAccepted, email, email).
		Order("id ASC").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.FriendEntry, 0, len(conns))
	for _, c := range conns {
		other := c.SenderEmail
		if other == email {
			other = c.ReceiverEmail
		}
		entries = append(entries, models.FriendEntry{Email: other, Room: c.Room})
	}
	return entries, nil
}

func (s *ConnectionStore) exists(q *gorm.DB) (bool, error) {
	var conn models.Connection
	err := q.First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
