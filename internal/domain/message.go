package domain

import "time"

// Message is one chat message in a room. Rooms are identified by the
// relationship record's id. Messages are immutable once created.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	RoomID    string    `json:"room_id" db:"room_id"`
	SenderID  string    `json:"sender_id" db:"sender_id"`
	Content   string    `json:"content" db:"content"`
	ReadBy    []string  `json:"read_by" db:"read_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// SenderName is joined in for delivery to clients; not a column on the
	// messages table itself.
	SenderName string `json:"sender_name" db:"sender_name"`
}
