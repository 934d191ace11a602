package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	mockRepo "subhub/internal/mocks/repository"
	mockSvc "subhub/internal/mocks/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	passwordHasher   *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	t.Helper()

	m := userServiceMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		passwordHasher:   mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		PasswordHasher:   m.passwordHasher,
		TokenService:     m.tokenService,
		Logger:           slog.Default(),
	})

	return svc, m
}

func expectTokenIssue(m userServiceMocks, userID uuid.UUID) *service.TokenPair {
	pair := &service.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	m.tokenService.EXPECT().GenerateTokens(userID).Return(pair, nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	return pair
}

func TestUserService_Register(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "admin@example.com").
		Return(nil, repository.ErrUserNotFound)
	m.passwordHasher.EXPECT().HashPassword("correct horse battery").Return("$2a$hash", nil)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	expectTokenIssue(m, userID)

	// Email is normalized before any lookup.
	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Admin",
		Email:    "  Admin@Example.COM ",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "admin@example.com", out.User.Email)
	assert.Equal(t, entity.ThemeSystem, out.User.Theme)
	assert.Equal(t, "$2a$hash", out.User.PasswordHash)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "admin@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "admin@example.com"}, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, out)
}

func TestUserService_Login(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "admin@example.com", PasswordHash: "$2a$hash"}

	m.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	m.passwordHasher.EXPECT().VerifyPassword("$2a$hash", "correct horse battery").Return(nil)
	expectTokenIssue(m, userID)

	out, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "$2a$hash"}

	m.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	m.passwordHasher.EXPECT().
		VerifyPassword("$2a$hash", "wrong").
		Return(domainerrors.ErrInvalidCredentials)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	// Unknown accounts and wrong passwords look identical to the caller.
	out, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_RefreshToken_RotatesOldToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "admin@example.com"}
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: "old-hash"}

	m.tokenService.EXPECT().HashToken("old-refresh-token").Return("old-hash")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	expectTokenIssue(m, userID)

	out, err := svc.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "old-refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_RefreshToken_UnknownToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.tokenService.EXPECT().HashToken("stale-token").Return("stale-hash")
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "stale-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	out, err := svc.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "stale-token"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, out)
}

func TestUserService_Logout(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-token-hash").Return(nil)

	require.NoError(t, svc.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestUserService_Logout_AlreadyRevoked(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-token-hash").
		Return(repository.ErrRefreshTokenNotFound)

	// Logging out twice is not an error.
	require.NoError(t, svc.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateThemePreference(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	updated := &entity.User{ID: userID, Email: "admin@example.com", Theme: entity.ThemeDark}

	m.userRepo.EXPECT().UpdateThemePreference(ctx, userID, entity.ThemeDark).Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(updated, nil)

	user, err := svc.UpdateThemePreference(ctx, userID, entity.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, user.Theme)
}

func TestUserService_UpdateThemePreference_NotFound(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		UpdateThemePreference(ctx, userID, entity.ThemeLight).
		Return(repository.ErrUserNotFound)

	user, err := svc.UpdateThemePreference(ctx, userID, entity.ThemeLight)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
