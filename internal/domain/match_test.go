package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uuidA = "11111111-1111-1111-1111-111111111111"
	uuidB = "22222222-2222-2222-2222-222222222222"
)

func TestCanonicalPair(t *testing.T) {
	t.Run("orders lexicographically regardless of argument order", func(t *testing.T) {
		low, high, err := CanonicalPair(uuidA, uuidB)
		require.NoError(t, err)
		assert.Equal(t, uuidA, low)
		assert.Equal(t, uuidB, high)

		low2, high2, err := CanonicalPair(uuidB, uuidA)
		require.NoError(t, err)
		assert.Equal(t, low, low2)
		assert.Equal(t, high, high2)
	})

	t.Run("rejects identical IDs", func(t *testing.T) {
		_, _, err := CanonicalPair(uuidA, uuidA)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		_, _, err := CanonicalPair("not-a-uuid", uuidB)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, _, err = CanonicalPair(uuidA, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		low, high MatchAction
		want      MatchStatus
	}{
		{ActionNone, ActionNone, StatusNone},
		{ActionLiked, ActionNone, StatusPending},
		{ActionNone, ActionLiked, StatusPending},
		{ActionLiked, ActionLiked, StatusMatched},
		{ActionDisliked, ActionNone, StatusDeclinedByOne},
		{ActionNone, ActionDisliked, StatusDeclinedByOne},
		{ActionDisliked, ActionLiked, StatusDeclinedByOne},
		{ActionLiked, ActionDisliked, StatusDeclinedByOne},
		{ActionDisliked, ActionDisliked, StatusMutuallyDeclined},
	}

	for _, tc := range cases {
		got := DeriveStatus(tc.low, tc.high)
		assert.Equalf(t, tc.want, got, "DeriveStatus(%s, %s)", tc.low, tc.high)

		// symmetric in its arguments
		assert.Equal(t, got, DeriveStatus(tc.high, tc.low))
	}
}

func TestRecomputeMatchedAt(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	m := &Match{
		ParticipantLow:  uuidA,
		ParticipantHigh: uuidB,
		ActionLow:       ActionLiked,
		ActionHigh:      ActionNone,
		Status:          StatusPending,
	}

	t.Run("set on transition into matched", func(t *testing.T) {
		m.SetAction(uuidB, ActionLiked)
		m.Recompute(t0)

		assert.Equal(t, StatusMatched, m.Status)
		require.NotNil(t, m.MatchedAt)
		assert.Equal(t, t0, *m.MatchedAt)
	})

	t.Run("preserved while still matched", func(t *testing.T) {
		m.SetAction(uuidA, ActionLiked)
		m.Recompute(t1)

		assert.Equal(t, StatusMatched, m.Status)
		require.NotNil(t, m.MatchedAt)
		assert.Equal(t, t0, *m.MatchedAt)
		assert.Equal(t, t1, m.UpdatedAt)
	})

	t.Run("cleared when the record leaves matched", func(t *testing.T) {
		m.SetAction(uuidB, ActionDisliked)
		m.Recompute(t1)

		assert.Equal(t, StatusDeclinedByOne, m.Status)
		assert.Nil(t, m.MatchedAt)
	})
}

func TestMatchParticipants(t *testing.T) {
	m := &Match{
		ParticipantLow:  uuidA,
		ParticipantHigh: uuidB,
		ActionLow:       ActionNone,
		ActionHigh:      ActionNone,
	}

	assert.True(t, m.HasUser(uuidA))
	assert.True(t, m.HasUser(uuidB))
	assert.False(t, m.HasUser("33333333-3333-3333-3333-333333333333"))

	other, ok := m.GetOtherUserID(uuidA)
	require.True(t, ok)
	assert.Equal(t, uuidB, other)

	_, ok = m.GetOtherUserID("33333333-3333-3333-3333-333333333333")
	assert.False(t, ok)

	m.SetAction(uuidB, ActionDisliked)
	assert.Equal(t, ActionDisliked, m.ActionOf(uuidB))
	assert.Equal(t, ActionNone, m.ActionOf(uuidA))
}
