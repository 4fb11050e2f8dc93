package chathub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const broadcastChannel = "chat:events"

// Hub tracks which connections are members of which rooms and fans events
// out to them. Membership is per-process and connection-scoped; with a
// redis client attached, events also reach room members connected to other
// instances through pub/sub.
type Hub struct {
	mu sync.RWMutex
	// rooms maps room id -> user id -> that user's connection in the room.
	// One connection per room per user; a rejoin replaces the previous one.
	rooms map[string]map[string]*Client

	// instanceID tags published envelopes so the subscriber can skip
	// events this process already delivered locally.
	instanceID string
	redis      *redis.Client
}

// envelope is the wire form of an event relayed between instances.
type envelope struct {
	Origin        string      `json:"origin"`
	RoomID        string      `json:"room_id"`
	ExcludeUserID string      `json:"exclude_user_id,omitempty"`
	Event         ServerEvent `json:"event"`
}

// NewHub creates a hub. rdb may be nil for a single-instance deployment.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rooms:      make(map[string]map[string]*Client),
		instanceID: uuid.NewString(),
		redis:      rdb,
	}
}

// Run blocks consuming relayed events from other instances until ctx is
// cancelled. It is a no-op without a redis client.
func (h *Hub) Run(ctx context.Context) {
	if h.redis == nil {
		return
	}

	pubsub := h.redis.Subscribe(ctx, broadcastChannel)
	defer pubsub.Close()
	log.Printf("chathub: pub/sub listener started (instance %s)", h.instanceID)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("chathub: dropping malformed pub/sub payload: %v", err)
				continue
			}
			if env.Origin == h.instanceID {
				continue
			}
			h.deliverLocal(env.RoomID, env.Event, env.ExcludeUserID)
		}
	}
}

// JoinRoom makes the client a member of the room. Rejoining is idempotent;
// a second connection by the same user takes over the membership.
func (h *Hub) JoinRoom(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[roomID] = members
	}
	members[client.UserID()] = client
	client.addRoom(roomID)
}

// IsMember reports whether the client currently belongs to the room.
func (h *Hub) IsMember(roomID string, client *Client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[roomID]
	return ok && members[client.UserID()] == client
}

// RemoveClient drops the client from every room it joined. Called on
// disconnect; undelivered broadcasts to this client are lost.
func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, roomID := range client.roomIDs() {
		if members, ok := h.rooms[roomID]; ok {
			if members[client.UserID()] == client {
				delete(members, client.UserID())
			}
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

// Broadcast sends the event to every current member of the room, here and
// on other instances. excludeUserID, when non-empty, skips that user
// (typing indicators are not echoed to their sender).
func (h *Hub) Broadcast(ctx context.Context, roomID string, event ServerEvent, excludeUserID string) {
	h.deliverLocal(roomID, event, excludeUserID)
	h.publish(ctx, roomID, event, excludeUserID)
}

func (h *Hub) deliverLocal(roomID string, event ServerEvent, excludeUserID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	for userID, client := range members {
		if excludeUserID != "" && userID == excludeUserID {
			continue
		}
		client.send(event)
	}
}

func (h *Hub) publish(ctx context.Context, roomID string, event ServerEvent, excludeUserID string) {
	if h.redis == nil {
		return
	}
	payload, err := json.Marshal(envelope{
		Origin:        h.instanceID,
		RoomID:        roomID,
		ExcludeUserID: excludeUserID,
		Event:         event,
	})
	if err != nil {
		log.Printf("chathub: failed to marshal broadcast envelope: %v", err)
		return
	}
	if err := h.redis.Publish(ctx, broadcastChannel, payload).Err(); err != nil {
		log.Printf("chathub: failed to publish to %s: %v", broadcastChannel, err)
	}
}
