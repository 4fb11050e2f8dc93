package chat_test

import (
	"context"
	"testing"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository/mocks"
	"github.com/devmatch/backend/internal/usecase/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	roomID   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	userA    = "11111111-1111-1111-1111-111111111111"
	userB    = "22222222-2222-2222-2222-222222222222"
	stranger = "33333333-3333-3333-3333-333333333333"
)

func newUseCase() (*chat.ChatUseCase, *mocks.MockMatchRepository, *mocks.MockMessageRepository, *mocks.MockUserRepository) {
	matchRepo := new(mocks.MockMatchRepository)
	messageRepo := new(mocks.MockMessageRepository)
	userRepo := new(mocks.MockUserRepository)
	return chat.NewChatUseCase(matchRepo, messageRepo, userRepo), matchRepo, messageRepo, userRepo
}

func matchedRoom() *domain.Match {
	return &domain.Match{
		ID:              roomID,
		ParticipantLow:  userA,
		ParticipantHigh: userB,
		ActionLow:       domain.ActionLiked,
		ActionHigh:      domain.ActionLiked,
		Status:          domain.StatusMatched,
	}
}

func TestAuthorize(t *testing.T) {
	t.Run("malformed room id", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		err := uc.Authorize(context.Background(), userA, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		matchRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown room", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		matchRepo.On("GetByID", mock.Anything, roomID).Return(nil, domain.ErrMatchNotFound).Once()
		err := uc.Authorize(context.Background(), userA, roomID)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("non-participant", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		matchRepo.On("GetByID", mock.Anything, roomID).Return(matchedRoom(), nil).Once()
		err := uc.Authorize(context.Background(), stranger, roomID)
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})

	t.Run("pending room is not chattable", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		m := matchedRoom()
		m.ActionHigh = domain.ActionNone
		m.Status = domain.StatusPending
		matchRepo.On("GetByID", mock.Anything, roomID).Return(m, nil).Once()
		err := uc.Authorize(context.Background(), userA, roomID)
		assert.ErrorIs(t, err, domain.ErrMatchNotActive)
	})

	t.Run("declined room is revoked for both", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		m := matchedRoom()
		m.ActionHigh = domain.ActionDisliked
		m.Status = domain.StatusDeclinedByOne
		matchRepo.On("GetByID", mock.Anything, roomID).Return(m, nil)
		assert.ErrorIs(t, uc.Authorize(context.Background(), userA, roomID), domain.ErrMatchNotActive)
		assert.ErrorIs(t, uc.Authorize(context.Background(), userB, roomID), domain.ErrMatchNotActive)
	})

	t.Run("matched participant is allowed", func(t *testing.T) {
		uc, matchRepo, _, _ := newUseCase()
		matchRepo.On("GetByID", mock.Anything, roomID).Return(matchedRoom(), nil).Once()
		assert.NoError(t, uc.Authorize(context.Background(), userA, roomID))
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("persists trimmed content and fills sender name", func(t *testing.T) {
		uc, matchRepo, messageRepo, userRepo := newUseCase()
		matchRepo.On("GetByID", mock.Anything, roomID).Return(matchedRoom(), nil).Once()
		messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil).Once()
		userRepo.On("GetByID", mock.Anything, userA).Return(&domain.User{ID: userA, Name: "Ada"}, nil).Once()

		msg, err := uc.SendMessage(context.Background(), userA, roomID, "  hello there  ")
		require.NoError(t, err)

		assert.Equal(t, "hello there", msg.Content)
		assert.Equal(t, roomID, msg.RoomID)
		assert.Equal(t, userA, msg.SenderID)
		assert.Equal(t, "Ada", msg.SenderName)

		messageRepo.AssertExpectations(t)
	})

	t.Run("rejects empty content before touching storage", func(t *testing.T) {
		uc, matchRepo, messageRepo, _ := newUseCase()

		_, err := uc.SendMessage(context.Background(), userA, roomID, "   \t\n ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		matchRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("re-checks authorization per message", func(t *testing.T) {
		uc, matchRepo, messageRepo, _ := newUseCase()
		m := matchedRoom()
		m.ActionLow = domain.ActionDisliked
		m.Status = domain.StatusDeclinedByOne
		matchRepo.On("GetByID", mock.Anything, roomID).Return(m, nil).Once()

		_, err := uc.SendMessage(context.Background(), userB, roomID, "hello?")
		assert.ErrorIs(t, err, domain.ErrMatchNotActive)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetHistory(t *testing.T) {
	uc, matchRepo, messageRepo, _ := newUseCase()
	matchRepo.On("GetByID", mock.Anything, roomID).Return(matchedRoom(), nil).Once()

	history := []*domain.Message{
		{ID: 1, RoomID: roomID, SenderID: userA, Content: "hi"},
		{ID: 2, RoomID: roomID, SenderID: userB, Content: "hey"},
	}
	messageRepo.On("ListByRoom", mock.Anything, roomID).Return(history, nil).Once()

	msgs, err := uc.GetHistory(context.Background(), userB, roomID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, int64(2), msgs[1].ID)
}
