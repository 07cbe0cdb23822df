package models

import (
	"gorm.io/gorm"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account, created on first sign-in.
type User struct {
	gorm.Model

	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `gorm:"type:varchar(20);default:'user'" json:"role"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ConnectionStatus is the closed set of relationship states.
type ConnectionStatus string

const (
	// ConnectionPending means the sender has asked to connect and the
	// receiver has not yet acted.
	ConnectionPending ConnectionStatus = "pending"

	// ConnectionAccepted means the receiver accepted and the pair share a
	// chat room.
	ConnectionAccepted ConnectionStatus = "accepted"
)

// Connection is the single edge record between an ordered pair of users.
// SenderEmail is always the account that initiated the request. Modelling the
// relationship as one row keeps both sides of the graph consistent: every
// state transition is a single write, so there is no window where only one
// user's view of the graph has been updated.
type Connection struct {
	gorm.Model

	SenderEmail   string           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"senderEmail"`
	ReceiverEmail string           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"receiverEmail"`
	Status        ConnectionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Room is stamped when the request is accepted, empty while pending.
	Room string `json:"room,omitempty"`
}

// ConnectionEntry is the wire shape of a pending or incoming request entry.
type ConnectionEntry struct {
	Email string `json:"email"`
}

// FriendEntry is the wire shape of an accepted relationship entry; Room names
// the chat room the pair shares.
type FriendEntry struct {
	Email string `json:"email"`
	Room  string `json:"room"`
}

// RoomID computes the shared room identifier for an accepted connection:
// the receiver of the original request first, then the sender.
func RoomID(senderEmail, receiverEmail string) string {
	return receiverEmail + "_" + senderEmail
}
