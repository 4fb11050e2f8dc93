package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO matches (participant_low, participant_high, action_low, action_high, status, matched_at, icebreakers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		match.ParticipantLow, match.ParticipantHigh,
		match.ActionLow, match.ActionHigh, match.Status,
		match.MatchedAt, pq.Array(match.Icebreakers),
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMatchConflict
		}
		return err
	}
	return nil
}

func (r *matchRepository) Update(ctx context.Context, match *domain.Match) error {
	query := `
		UPDATE matches
		SET action_low = $1, action_high = $2, status = $3, matched_at = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		match.ActionLow, match.ActionHigh, match.Status, match.MatchedAt, match.ID,
	).Scan(&match.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrMatchNotFound
		}
		return err
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `
		SELECT id, participant_low, participant_high, action_low, action_high,
		       status, icebreakers, matched_at, created_at, updated_at
		FROM matches WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *matchRepository) GetByPair(ctx context.Context, low, high string) (*domain.Match, error) {
	query := `
		SELECT id, participant_low, participant_high, action_low, action_high,
		       status, icebreakers, matched_at, created_at, updated_at
		FROM matches WHERE participant_low = $1 AND participant_high = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, low, high))
}

func (r *matchRepository) GetAllInvolving(ctx context.Context, userID string) ([]*domain.Match, error) {
	query := `
		SELECT id, participant_low, participant_high, action_low, action_high,
		       status, icebreakers, matched_at, created_at, updated_at
		FROM matches
		WHERE participant_low = $1 OR participant_high = $1
	`
	return r.scanMany(ctx, query, userID)
}

func (r *matchRepository) GetMatchedInvolving(ctx context.Context, userID string) ([]*domain.Match, error) {
	query := `
		SELECT id, participant_low, participant_high, action_low, action_high,
		       status, icebreakers, matched_at, created_at, updated_at
		FROM matches
		WHERE (participant_low = $1 OR participant_high = $1) AND status = 'matched'
		ORDER BY matched_at DESC
	`
	return r.scanMany(ctx, query, userID)
}

func (r *matchRepository) UpdateIcebreakers(ctx context.Context, matchID string, icebreakers []string) error {
	query := `UPDATE matches SET icebreakers = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), matchID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) scanOne(row *sql.Row) (*domain.Match, error) {
	var match domain.Match
	err := row.Scan(
		&match.ID, &match.ParticipantLow, &match.ParticipantHigh,
		&match.ActionLow, &match.ActionHigh, &match.Status,
		pq.Array(&match.Icebreakers), &match.MatchedAt,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]*domain.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		var match domain.Match
		err := rows.Scan(
			&match.ID, &match.ParticipantLow, &match.ParticipantHigh,
			&match.ActionLow, &match.ActionHigh, &match.Status,
			pq.Array(&match.Icebreakers), &match.MatchedAt,
			&match.CreatedAt, &match.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &match)
	}
	return matches, rows.Err()
}
