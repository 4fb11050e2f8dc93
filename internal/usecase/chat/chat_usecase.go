package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/google/uuid"
)

// ChatUseCase authorizes room access against the relationship record and
// owns the per-room message log. A room is the match record's id; only the
// two participants of a record in matched status may use it.
type ChatUseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewChatUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *ChatUseCase {
	return &ChatUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Authorize checks that roomID names an existing match record, that userID
// is one of its participants and that the record is in matched status.
// Membership can be revoked by a later status change, so callers re-check
// per operation rather than caching the result.
func (uc *ChatUseCase) Authorize(ctx context.Context, userID, roomID string) error {
	if uuid.Validate(roomID) != nil {
		return domain.ErrInvalidInput
	}

	m, err := uc.matchRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !m.HasUser(userID) {
		return domain.ErrNotParticipant
	}
	if m.Status != domain.StatusMatched {
		return domain.ErrMatchNotActive
	}
	return nil
}

// SendMessage persists one message after re-verifying room authorization.
// Content is whitespace-trimmed and must be non-empty.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, roomID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.Authorize(ctx, userID, roomID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		RoomID:   roomID,
		SenderID: userID,
		Content:  content,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}
	message.SenderName = sender.Name

	return message, nil
}

// GetHistory returns a room's full message log in persistence order.
func (uc *ChatUseCase) GetHistory(ctx context.Context, userID, roomID string) ([]*domain.Message, error) {
	if err := uc.Authorize(ctx, userID, roomID); err != nil {
		return nil, err
	}
	messages, err := uc.messageRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return messages, nil
}
