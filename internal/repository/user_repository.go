package repository

import (
	"context"

	"github.com/devmatch/backend/internal/domain"
)

type UserRepository interface {
	// Create inserts a new user. It returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// GetAllExcept returns every user whose id is not in excludedIDs.
	GetAllExcept(ctx context.Context, excludedIDs []string) ([]*domain.User, error)
}
