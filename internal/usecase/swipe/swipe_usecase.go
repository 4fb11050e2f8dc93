package swipe

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/infrastructure/gemini"
	"github.com/devmatch/backend/internal/repository"
)

// SwipeUseCase owns the relationship record lifecycle: it records one
// participant's action, recomputes the derived status and persists the
// record atomically.
type SwipeUseCase struct {
	matchRepo    repository.MatchRepository
	userRepo     repository.UserRepository
	geminiClient *gemini.Client
}

func NewSwipeUseCase(
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	geminiClient *gemini.Client,
) *SwipeUseCase {
	return &SwipeUseCase{
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		geminiClient: geminiClient,
	}
}

// SwipeResponse represents the result of a like or dislike
type SwipeResponse struct {
	Match       *domain.Match         `json:"match"`
	IsNewMatch  bool                  `json:"is_new_match"`
	MatchedUser *domain.PublicProfile `json:"matched_user,omitempty"`
}

// RecordAction applies one participant's like or dislike to the pair's
// relationship record, creating the record on first action. IsNewMatch is
// true only on the write that transitions the record into matched.
func (uc *SwipeUseCase) RecordAction(ctx context.Context, currentUserID, targetUserID string, action domain.MatchAction) (*SwipeResponse, error) {
	if action != domain.ActionLiked && action != domain.ActionDisliked {
		return nil, domain.ErrInvalidInput
	}
	if currentUserID == targetUserID {
		return nil, domain.ErrInvalidInput
	}

	low, high, err := domain.CanonicalPair(currentUserID, targetUserID)
	if err != nil {
		return nil, err
	}

	match, statusBefore, err := uc.applyAction(ctx, low, high, currentUserID, action)
	if err != nil {
		return nil, err
	}

	response := &SwipeResponse{
		Match:      match,
		IsNewMatch: match.Status == domain.StatusMatched && statusBefore != domain.StatusMatched,
	}

	if response.IsNewMatch {
		target, err := uc.userRepo.GetByID(ctx, targetUserID)
		if err != nil {
			// The match is already persisted; losing the profile enrichment
			// is not worth failing the call over.
			log.Printf("swipe: failed to load matched user %s: %v", targetUserID, err)
		} else {
			response.MatchedUser = target.Public()
		}

		if uc.geminiClient != nil {
			go uc.generateIcebreakers(match.ID, currentUserID, targetUserID)
		}
	}

	return response, nil
}

// applyAction performs the fetch-or-create read-modify-write. A creation
// lost to a concurrent insert is retried once against the now-existing
// record; a second conflict is surfaced to the caller.
func (uc *SwipeUseCase) applyAction(ctx context.Context, low, high, currentUserID string, action domain.MatchAction) (*domain.Match, domain.MatchStatus, error) {
	match, err := uc.matchRepo.GetByPair(ctx, low, high)
	if err == domain.ErrMatchNotFound {
		fresh := &domain.Match{
			ParticipantLow:  low,
			ParticipantHigh: high,
			ActionLow:       domain.ActionNone,
			ActionHigh:      domain.ActionNone,
			Status:          domain.StatusNone,
		}
		fresh.SetAction(currentUserID, action)
		fresh.Recompute(time.Now())

		createErr := uc.matchRepo.Create(ctx, fresh)
		if createErr == nil {
			return fresh, domain.StatusNone, nil
		}
		if createErr != domain.ErrMatchConflict {
			return nil, "", fmt.Errorf("failed to create match record: %w", createErr)
		}

		// The other participant won the creation race; apply our action to
		// their record instead.
		match, err = uc.matchRepo.GetByPair(ctx, low, high)
		if err != nil {
			return nil, "", fmt.Errorf("failed to re-fetch match after conflict: %w", err)
		}
	} else if err != nil {
		return nil, "", fmt.Errorf("failed to get match record: %w", err)
	}

	statusBefore := match.Status
	match.SetAction(currentUserID, action)
	match.Recompute(time.Now())

	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, "", fmt.Errorf("failed to update match record: %w", err)
	}
	return match, statusBefore, nil
}

// generateIcebreakers asks Gemini for opening lines based on the two
// developers' skills and interests and stores them on the match record.
// Best-effort: failures are logged and the match stands without them.
func (uc *SwipeUseCase) generateIcebreakers(matchID, user1ID, user2ID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u1, err := uc.userRepo.GetByID(ctx, user1ID)
	if err != nil {
		log.Printf("swipe: icebreakers skipped, failed to load user %s: %v", user1ID, err)
		return
	}
	u2, err := uc.userRepo.GetByID(ctx, user2ID)
	if err != nil {
		log.Printf("swipe: icebreakers skipped, failed to load user %s: %v", user2ID, err)
		return
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, u1, u2)
	if err != nil {
		log.Printf("swipe: icebreaker generation failed for match %s: %v", matchID, err)
		return
	}

	if err := uc.matchRepo.UpdateIcebreakers(ctx, matchID, icebreakers); err != nil {
		log.Printf("swipe: failed to save icebreakers for match %s: %v", matchID, err)
	}
}
