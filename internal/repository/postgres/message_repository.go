package postgres

import (
	"context"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (room_id, sender_id, content, read_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.RoomID, message.SenderID, message.Content, pq.Array(message.ReadBy),
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Message, error) {
	// The (room_id, created_at) index backs this scan; the id tiebreaker
	// keeps same-timestamp messages in insertion order.
	query := `
		SELECT m.id, m.room_id, m.sender_id, m.content, m.read_by, m.created_at, u.name AS sender_name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.room_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var message domain.Message
		err := rows.Scan(
			&message.ID, &message.RoomID, &message.SenderID, &message.Content,
			pq.Array(&message.ReadBy), &message.CreatedAt, &message.SenderName,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}
	return messages, rows.Err()
}
