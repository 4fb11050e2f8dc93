package discover_test

import (
	"context"
	"testing"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository/mocks"
	"github.com/devmatch/backend/internal/usecase/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	me    = "11111111-1111-1111-1111-111111111111"
	liked = "22222222-2222-2222-2222-222222222222"
	hater = "33333333-3333-3333-3333-333333333333"
	admir = "44444444-4444-4444-4444-444444444444"
	fresh = "55555555-5555-5555-5555-555555555555"
)

func TestListCandidatesExclusion(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	matchRepo := new(mocks.MockMatchRepository)
	uc := discover.NewDiscoverUseCase(userRepo, matchRepo)

	interactions := []*domain.Match{
		// I liked them, still pending: excluded by my own action.
		{
			ParticipantLow: me, ParticipantHigh: liked,
			ActionLow: domain.ActionLiked, ActionHigh: domain.ActionNone,
			Status: domain.StatusPending,
		},
		// I disliked them: excluded.
		{
			ParticipantLow: me, ParticipantHigh: hater,
			ActionLow: domain.ActionDisliked, ActionHigh: domain.ActionNone,
			Status: domain.StatusDeclinedByOne,
		},
		// They liked me but I have not acted: still a candidate.
		{
			ParticipantLow: me, ParticipantHigh: admir,
			ActionLow: domain.ActionNone, ActionHigh: domain.ActionLiked,
			Status: domain.StatusPending,
		},
	}
	matchRepo.On("GetAllInvolving", mock.Anything, me).Return(interactions, nil).Once()

	var gotExcluded []string
	userRepo.On("GetAllExcept", mock.Anything, mock.AnythingOfType("[]string")).
		Run(func(args mock.Arguments) {
			gotExcluded = args.Get(1).([]string)
		}).
		Return([]*domain.User{
			{ID: admir, Name: "Admirer"},
			{ID: fresh, Name: "Fresh"},
		}, nil).Once()

	candidates, err := uc.ListCandidates(context.Background(), me)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{me, liked, hater}, gotExcluded)

	require.Len(t, candidates, 2)
	assert.Equal(t, admir, candidates[0].ID)
	assert.Equal(t, fresh, candidates[1].ID)
}

func TestListCandidatesNoInteractions(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	matchRepo := new(mocks.MockMatchRepository)
	uc := discover.NewDiscoverUseCase(userRepo, matchRepo)

	matchRepo.On("GetAllInvolving", mock.Anything, me).Return([]*domain.Match{}, nil).Once()
	userRepo.On("GetAllExcept", mock.Anything, []string{me}).Return([]*domain.User{}, nil).Once()

	candidates, err := uc.ListCandidates(context.Background(), me)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
