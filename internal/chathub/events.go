package chathub

import "github.com/devmatch/backend/internal/domain"

// Client→server event types.
const (
	EventJoinRoom    = "join_room"
	EventSendMessage = "send_message"
	EventTyping      = "typing"
)

// Server→client event types.
const (
	EventRoomJoined      = "room_joined"
	EventRoomJoinError   = "room_join_error"
	EventMessageReceived = "message_received"
	EventMessageError    = "message_error"
	EventUserTyping      = "user_typing"
)

// ClientEvent is a message received from a connected client.
type ClientEvent struct {
	Type     string `json:"type"`
	RoomID   string `json:"room_id"`
	Content  string `json:"content,omitempty"`
	IsTyping bool   `json:"is_typing,omitempty"`
}

// ServerEvent is a message sent to connected clients.
type ServerEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type RoomPayload struct {
	RoomID string `json:"room_id"`
}

type ErrorPayload struct {
	RoomID string `json:"room_id"`
	Reason string `json:"reason"`
}

type TypingPayload struct {
	RoomID   string `json:"room_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	IsTyping bool   `json:"is_typing"`
}

func messageEvent(message *domain.Message) ServerEvent {
	return ServerEvent{Type: EventMessageReceived, Payload: message}
}
