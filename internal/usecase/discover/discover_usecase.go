package discover

import (
	"context"
	"fmt"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
)

// DiscoverUseCase computes the set of candidate profiles for a user,
// excluding everyone the user has already acted on. The exclusion set is
// rebuilt from the relationship records on every call; nothing is cached.
type DiscoverUseCase struct {
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
}

func NewDiscoverUseCase(userRepo repository.UserRepository, matchRepo repository.MatchRepository) *DiscoverUseCase {
	return &DiscoverUseCase{
		userRepo:  userRepo,
		matchRepo: matchRepo,
	}
}

// ListCandidates returns the public profiles the user can still swipe on.
// A counterpart is excluded when the pair is matched or when the caller's
// own action toward them is liked or disliked; the counterpart's pending
// action alone does not hide them.
func (uc *DiscoverUseCase) ListCandidates(ctx context.Context, currentUserID string) ([]*domain.PublicProfile, error) {
	interactions, err := uc.matchRepo.GetAllInvolving(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing interactions: %w", err)
	}

	excluded := []string{currentUserID}
	for _, interaction := range interactions {
		otherID, ok := interaction.GetOtherUserID(currentUserID)
		if !ok {
			continue
		}
		ownAction := interaction.ActionOf(currentUserID)
		if interaction.Status == domain.StatusMatched ||
			ownAction == domain.ActionLiked || ownAction == domain.ActionDisliked {
			excluded = append(excluded, otherID)
		}
	}

	users, err := uc.userRepo.GetAllExcept(ctx, excluded)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate users: %w", err)
	}

	candidates := make([]*domain.PublicProfile, 0, len(users))
	for _, user := range users {
		candidates = append(candidates, user.Public())
	}
	return candidates, nil
}
