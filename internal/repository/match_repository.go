package repository

import (
	"context"

	"github.com/devmatch/backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts a new relationship record. It returns
	// domain.ErrMatchConflict when a record for the same canonical pair was
	// inserted concurrently.
	Create(ctx context.Context, match *domain.Match) error
	// Update persists the record's action slots, status and timestamps as a
	// single atomic write keyed by id.
	Update(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetByPair(ctx context.Context, low, high string) (*domain.Match, error)
	GetAllInvolving(ctx context.Context, userID string) ([]*domain.Match, error)
	// GetMatchedInvolving returns records with status matched, newest
	// matched_at first.
	GetMatchedInvolving(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateIcebreakers(ctx context.Context, matchID string, icebreakers []string) error
}
