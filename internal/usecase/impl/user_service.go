package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	passwordHasher   service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	PasswordHasher   service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		passwordHasher:   params.PasswordHasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// Register creates an admin account and logs it in.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Theme:        entity.ThemeSystem,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so login probing reveals nothing.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := s.passwordHasher.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair.
func (s *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	tokenHash := s.tokenService.HashToken(input.RefreshToken)

	stored, err := s.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	// One-time use: the old token is revoked before a new pair is issued.
	if err := s.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	user, err := s.userRepo.FindUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user for refresh token")
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the given refresh token. Revoking an already-revoked token
// succeeds so repeated logouts are harmless.
func (s *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	tokenHash := s.tokenService.HashToken(input.RefreshToken)

	if err := s.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetProfile returns the account of the authenticated user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateThemePreference stores the user's theme choice.
func (s *userService) UpdateThemePreference(ctx context.Context, userID uuid.UUID, theme entity.ThemePreference) (*entity.User, error) {
	if err := s.userRepo.UpdateThemePreference(ctx, userID, theme); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update theme preference")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after theme update")
	}

	return user, nil
}

// issueTokens generates a token pair and persists the refresh token hash.
func (s *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	pair, err := s.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	refreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: s.tokenService.HashToken(pair.RefreshToken),
		ExpiresAt: time.Now().Add(s.tokenService.RefreshTokenDuration()),
	}
	if err := s.refreshTokenRepo.CreateRefreshToken(ctx, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
