package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchAction is a single participant's latest action toward the other.
type MatchAction string

const (
	ActionNone     MatchAction = "none"
	ActionLiked    MatchAction = "liked"
	ActionDisliked MatchAction = "disliked"
)

func (a MatchAction) Valid() bool {
	return a == ActionNone || a == ActionLiked || a == ActionDisliked
}

// MatchStatus is derived from the two participants' actions and is never set
// directly by callers.
type MatchStatus string

const (
	StatusNone             MatchStatus = "none"
	StatusPending          MatchStatus = "pending"
	StatusMatched          MatchStatus = "matched"
	StatusDeclinedByOne    MatchStatus = "declined_by_one"
	StatusMutuallyDeclined MatchStatus = "mutually_declined"
)

// Match is the relationship record for one unordered pair of users.
// ParticipantLow always sorts before ParticipantHigh, so at most one record
// exists per pair (enforced by a unique index).
type Match struct {
	ID              string      `json:"id" db:"id"`
	ParticipantLow  string      `json:"participant_low" db:"participant_low"`
	ParticipantHigh string      `json:"participant_high" db:"participant_high"`
	ActionLow       MatchAction `json:"action_low" db:"action_low"`
	ActionHigh      MatchAction `json:"action_high" db:"action_high"`
	Status          MatchStatus `json:"status" db:"status"`
	Icebreakers     []string    `json:"icebreakers,omitempty" db:"icebreakers"`
	MatchedAt       *time.Time  `json:"matched_at" db:"matched_at"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.ParticipantLow == userID || m.ParticipantHigh == userID
}

func (m *Match) GetOtherUserID(userID string) (string, bool) {
	if m.ParticipantLow == userID {
		return m.ParticipantHigh, true
	}
	if m.ParticipantHigh == userID {
		return m.ParticipantLow, true
	}
	return "", false
}

// ActionOf returns the given participant's action slot.
func (m *Match) ActionOf(userID string) MatchAction {
	if m.ParticipantLow == userID {
		return m.ActionLow
	}
	return m.ActionHigh
}

// SetAction writes the given participant's action slot, leaving the other
// slot untouched.
func (m *Match) SetAction(userID string, action MatchAction) {
	if m.ParticipantLow == userID {
		m.ActionLow = action
	} else {
		m.ActionHigh = action
	}
}

// CanonicalPair orders two user IDs so the lexicographically smaller one
// comes first. Both IDs must be valid UUIDs and must differ.
func CanonicalPair(a, b string) (low, high string, err error) {
	if uuid.Validate(a) != nil || uuid.Validate(b) != nil {
		return "", "", ErrInvalidInput
	}
	if a == b {
		return "", "", ErrInvalidInput
	}
	if a < b {
		return a, b, nil
	}
	return b, a, nil
}

// DeriveStatus computes the aggregate status from the two action slots.
// It is a total function over the nine action combinations and is symmetric
// in its arguments.
func DeriveStatus(actionLow, actionHigh MatchAction) MatchStatus {
	switch {
	case actionLow == ActionLiked && actionHigh == ActionLiked:
		return StatusMatched
	case actionLow == ActionDisliked && actionHigh == ActionDisliked:
		return StatusMutuallyDeclined
	case actionLow == ActionDisliked || actionHigh == ActionDisliked:
		return StatusDeclinedByOne
	case actionLow == ActionLiked || actionHigh == ActionLiked:
		return StatusPending
	default:
		return StatusNone
	}
}

// Recompute refreshes Status and MatchedAt from the action slots. MatchedAt
// is set only on the transition into matched and preserved across repeated
// saves while already matched.
func (m *Match) Recompute(now time.Time) {
	prev := m.Status
	m.Status = DeriveStatus(m.ActionLow, m.ActionHigh)
	if m.Status == StatusMatched {
		if prev != StatusMatched {
			t := now
			m.MatchedAt = &t
		}
	} else {
		m.MatchedAt = nil
	}
	m.UpdatedAt = now
}
