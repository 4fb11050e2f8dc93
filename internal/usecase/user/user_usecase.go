package user

import (
	"context"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/google/uuid"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left unchanged; an explicit empty value clears the field.
type UpdateProfileRequest struct {
	Name             *string   `json:"name"`
	Skills           *[]string `json:"skills"`
	Experience       *string   `json:"experience"`
	GithubLink       *string   `json:"github_link"`
	ProjectInterests *[]string `json:"project_interests"`
	TechStacks       *[]string `json:"tech_stacks"`
	ProfilePicture   *string   `json:"profile_picture"`
}

// GetPublicProfile returns another user's match-relevant fields.
func (uc *UserUseCase) GetPublicProfile(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	if uuid.Validate(userID) != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.GithubLink != nil {
		user.GithubLink = *req.GithubLink
	}
	if req.ProjectInterests != nil {
		user.ProjectInterests = *req.ProjectInterests
	}
	if req.TechStacks != nil {
		user.TechStacks = *req.TechStacks
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
