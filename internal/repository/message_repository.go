package repository

import (
	"context"

	"github.com/devmatch/backend/internal/domain"
)

type MessageRepository interface {
	// Create appends a message to its room's log. The store assigns the id
	// and timestamp; broadcast order must follow insertion order.
	Create(ctx context.Context, message *domain.Message) error
	// ListByRoom returns the full history of a room in chronological order.
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Message, error)
}
