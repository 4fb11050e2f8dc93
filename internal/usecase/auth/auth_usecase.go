package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, expiryHours int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Name             string   `json:"name" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Password         string   `json:"password" binding:"required,min=6"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	GithubLink       string   `json:"github_link"`
	ProjectInterests []string `json:"project_interests"`
	TechStacks       []string `json:"tech_stacks"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Register creates a new user with a bcrypt-hashed password.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Skills:           req.Skills,
		Experience:       req.Experience,
		GithubLink:       req.GithubLink,
		ProjectInterests: req.ProjectInterests,
		TechStacks:       req.TechStacks,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a signed token. The same
// ErrInvalidCredentials is returned for an unknown email and a wrong
// password.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(uc.tokenExpiry)
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// VerifyToken validates a bearer token and resolves it to a live user. A
// token whose subject no longer exists is rejected the same as a bad
// signature.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return user, nil
}

// GetMe returns the authenticated user's own record.
func (uc *AuthUseCase) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
