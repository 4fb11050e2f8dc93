package chathub

import (
	"errors"
	"fmt"
	"testing"

	"github.com/devmatch/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorReason(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidInput, "invalid room id or empty message"},
		{domain.ErrMatchNotFound, "match not found"},
		{domain.ErrNotParticipant, "you are not a participant of this match"},
		{domain.ErrMatchNotActive, "this match is not active"},
		// wrapped errors still map to their reason
		{fmt.Errorf("authorize: %w", domain.ErrMatchNotActive), "this match is not active"},
		// internals never reach the client verbatim
		{errors.New("pq: connection refused"), "server error"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, errorReason(tc.err))
	}
}

func TestMessageEvent(t *testing.T) {
	msg := &domain.Message{ID: 7, RoomID: testRoom, SenderID: "user-a", Content: "hi"}
	ev := messageEvent(msg)

	assert.Equal(t, EventMessageReceived, ev.Type)
	assert.Same(t, msg, ev.Payload)
}
