package chathub

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/usecase/chat"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// persistTimeout bounds every repository call made on behalf of a
	// connection event so an unresponsive store fails the event instead of
	// hanging the pump.
	persistTimeout = 10 * time.Second
)

// Client is one authenticated websocket connection. Events it produces are
// authorized and persisted through the chat use case before any broadcast.
type Client struct {
	user *domain.User
	hub  *Hub
	chat *chat.ChatUseCase
	conn *websocket.Conn

	sendCh chan ServerEvent

	mu    sync.Mutex
	rooms map[string]bool
}

func NewClient(user *domain.User, hub *Hub, chatUC *chat.ChatUseCase, conn *websocket.Conn) *Client {
	return &Client{
		user:   user,
		hub:    hub,
		chat:   chatUC,
		conn:   conn,
		sendCh: make(chan ServerEvent, 256),
		rooms:  make(map[string]bool),
	}
}

func (c *Client) UserID() string   { return c.user.ID }
func (c *Client) UserName() string { return c.user.Name }

// Run starts the read and write pumps and returns immediately.
func (c *Client) Run() {
	go c.writePump()
	go c.readPump()
}

// send queues an event for delivery. A full buffer drops the event rather
// than blocking the hub on a slow client.
func (c *Client) send(event ServerEvent) {
	select {
	case c.sendCh <- event:
	default:
		log.Printf("chathub: dropping event %s for slow client %s", event.Type, c.user.ID)
	}
}

func (c *Client) addRoom(roomID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[roomID] = true
}

func (c *Client) roomIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	return ids
}

func (c *Client) readPump() {
	defer func() {
		c.hub.RemoveClient(c)
		close(c.sendCh)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("chathub: read error for user %s: %v", c.user.ID, err)
			}
			return
		}

		var event ClientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Printf("chathub: malformed event from user %s: %v", c.user.ID, err)
			continue
		}
		c.handleEvent(event)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleEvent(event ClientEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	switch event.Type {
	case EventJoinRoom:
		c.handleJoinRoom(ctx, event)
	case EventSendMessage:
		c.handleSendMessage(ctx, event)
	case EventTyping:
		c.handleTyping(ctx, event)
	default:
		log.Printf("chathub: unknown event type %q from user %s", event.Type, c.user.ID)
	}
}

// handleJoinRoom authorizes the membership against the relationship record
// and registers the connection. A failed join is reported on the connection
// without closing it.
func (c *Client) handleJoinRoom(ctx context.Context, event ClientEvent) {
	if err := c.chat.Authorize(ctx, c.user.ID, event.RoomID); err != nil {
		c.send(ServerEvent{
			Type:    EventRoomJoinError,
			Payload: ErrorPayload{RoomID: event.RoomID, Reason: errorReason(err)},
		})
		return
	}
	c.hub.JoinRoom(event.RoomID, c)
	c.send(ServerEvent{Type: EventRoomJoined, Payload: RoomPayload{RoomID: event.RoomID}})
}

// handleSendMessage re-verifies authorization, persists the message, then
// broadcasts it to every room member including the sender. Errors go to the
// sender only.
func (c *Client) handleSendMessage(ctx context.Context, event ClientEvent) {
	message, err := c.chat.SendMessage(ctx, c.user.ID, event.RoomID, event.Content)
	if err != nil {
		c.send(ServerEvent{
			Type:    EventMessageError,
			Payload: ErrorPayload{RoomID: event.RoomID, Reason: errorReason(err)},
		})
		return
	}
	c.hub.Broadcast(ctx, event.RoomID, messageEvent(message), "")
}

// handleTyping relays a typing indicator to the other room members.
// Best-effort: no persistence, no authorization beyond membership.
func (c *Client) handleTyping(ctx context.Context, event ClientEvent) {
	if !c.hub.IsMember(event.RoomID, c) {
		return
	}
	c.hub.Broadcast(ctx, event.RoomID, ServerEvent{
		Type: EventUserTyping,
		Payload: TypingPayload{
			RoomID:   event.RoomID,
			UserID:   c.user.ID,
			UserName: c.user.Name,
			IsTyping: event.IsTyping,
		},
	}, c.user.ID)
}

// errorReason maps a domain error to a client-facing reason without leaking
// internals.
func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid room id or empty message"
	case errors.Is(err, domain.ErrMatchNotFound):
		return "match not found"
	case errors.Is(err, domain.ErrNotParticipant):
		return "you are not a participant of this match"
	case errors.Is(err, domain.ErrMatchNotActive):
		return "this match is not active"
	default:
		return "server error"
	}
}
