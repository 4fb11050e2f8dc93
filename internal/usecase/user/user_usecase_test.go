package user_test

import (
	"context"
	"testing"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository/mocks"
	"github.com/devmatch/backend/internal/usecase/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "11111111-1111-1111-1111-111111111111"

func TestGetPublicProfile(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	uc := user.NewUserUseCase(userRepo)

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:           userID,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "secret-hash",
		Skills:       []string{"go"},
	}, nil).Once()

	profile, err := uc.GetPublicProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, []string{"go"}, profile.Skills)

	_, err = uc.GetPublicProfile(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProfilePartial(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	uc := user.NewUserUseCase(userRepo)

	existing := &domain.User{
		ID:         userID,
		Name:       "Ada",
		Experience: "senior",
		Skills:     []string{"go"},
		GithubLink: "https://github.com/ada",
	}
	userRepo.On("GetByID", mock.Anything, userID).Return(existing, nil).Once()
	userRepo.On("Update", mock.Anything, existing).Return(nil).Once()

	newName := "Ada L."
	emptyLink := ""
	updated, err := uc.UpdateProfile(context.Background(), userID, &user.UpdateProfileRequest{
		Name:       &newName,
		GithubLink: &emptyLink,
	})
	require.NoError(t, err)

	// set fields change, explicit empty clears, nil fields survive
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "", updated.GithubLink)
	assert.Equal(t, "senior", updated.Experience)
	assert.Equal(t, []string{"go"}, updated.Skills)

	userRepo.AssertExpectations(t)
}
