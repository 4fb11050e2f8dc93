package auth_test

import (
	"context"
	"testing"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository/mocks"
	"github.com/devmatch/backend/internal/usecase/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-that-is-long-enough-0123"

func newUseCase() (*auth.AuthUseCase, *mocks.MockUserRepository) {
	userRepo := new(mocks.MockUserRepository)
	return auth.NewAuthUseCase(userRepo, testSecret, 5), userRepo
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, userRepo := newUseCase()

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(nil).Once()

	user, err := uc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
		Skills:   []string{"go", "postgres"},
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
	assert.Equal(t, []string{"go", "postgres"}, user.Skills)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, userRepo := newUseCase()
	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUserExists).Once()

	_, err := uc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	uc, userRepo := newUseCase()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}
	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil).Once()
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

	resp, err := uc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	verified, err := uc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, userRepo := newUseCase()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash)}

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil).Once()
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound).Once()

	// wrong password and unknown email look the same to the caller
	_, err = uc.Login(context.Background(), &auth.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), &auth.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyTokenRejections(t *testing.T) {
	uc, userRepo := newUseCase()

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.VerifyToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewAuthUseCase(new(mocks.MockUserRepository), "a-different-secret-that-is-long-too", 5)

		hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		require.NoError(t, err)
		u := &domain.User{ID: "u1", Email: "x@example.com", PasswordHash: string(hash)}
		userRepo.On("GetByEmail", mock.Anything, "x@example.com").Return(u, nil).Once()

		resp, err := uc.Login(context.Background(), &auth.LoginRequest{Email: "x@example.com", Password: "pw"})
		require.NoError(t, err)

		_, err = other.VerifyToken(context.Background(), resp.Token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		require.NoError(t, err)
		u := &domain.User{ID: "ghost", Email: "ghost@example.com", PasswordHash: string(hash)}
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(u, nil).Once()
		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		resp, err := uc.Login(context.Background(), &auth.LoginRequest{Email: "ghost@example.com", Password: "pw"})
		require.NoError(t, err)

		_, err = uc.VerifyToken(context.Background(), resp.Token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
