package match

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewMatchUseCase(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// MatchedUserResponse represents one entry in the user's match list
type MatchedUserResponse struct {
	MatchID         string                `json:"match_id"`
	MatchedWithUser *domain.PublicProfile `json:"matched_with_user"`
	Icebreakers     []string              `json:"icebreakers,omitempty"`
	MatchedAt       *time.Time            `json:"matched_at"`
}

// MatchDetailsResponse represents one match viewed by a participant
type MatchDetailsResponse struct {
	MatchID   string                `json:"match_id"`
	OtherUser *domain.PublicProfile `json:"other_user"`
	Status    domain.MatchStatus    `json:"status"`
}

// GetMyMatches returns the caller's matched relationships, newest first,
// each projected to the counterpart's public profile.
func (uc *MatchUseCase) GetMyMatches(ctx context.Context, currentUserID string) ([]*MatchedUserResponse, error) {
	matches, err := uc.matchRepo.GetMatchedInvolving(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	responses := make([]*MatchedUserResponse, 0, len(matches))
	for _, m := range matches {
		otherID, ok := m.GetOtherUserID(currentUserID)
		if !ok {
			continue
		}
		other, err := uc.userRepo.GetByID(ctx, otherID)
		if err != nil {
			// A counterpart that fails to load drops out of the list rather
			// than failing the whole call.
			log.Printf("match: failed to load user %s for match %s: %v", otherID, m.ID, err)
			continue
		}
		responses = append(responses, &MatchedUserResponse{
			MatchID:         m.ID,
			MatchedWithUser: other.Public(),
			Icebreakers:     m.Icebreakers,
			MatchedAt:       m.MatchedAt,
		})
	}
	return responses, nil
}

// GetMatchDetails returns one relationship record's counterpart and status.
// Only the two participants may view it.
func (uc *MatchUseCase) GetMatchDetails(ctx context.Context, currentUserID, matchID string) (*MatchDetailsResponse, error) {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasUser(currentUserID) {
		return nil, domain.ErrNotParticipant
	}

	otherID, _ := m.GetOtherUserID(currentUserID)
	other, err := uc.userRepo.GetByID(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched user: %w", err)
	}

	return &MatchDetailsResponse{
		MatchID:   m.ID,
		OtherUser: other.Public(),
		Status:    m.Status,
	}, nil
}
