package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"subhub/internal/delivery/http/middleware"
	"subhub/internal/domain/entity"
	mockUC "subhub/internal/mocks/usecase"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	input := usecase.RegisterInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "correct horse battery",
	}
	output := &usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{ID: uuid.New(), Email: "admin@example.com"},
	}
	uc.EXPECT().Register(mock.Anything, input).Return(output, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Admin","email":"admin@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Admin","email":"admin@example.com","password":"short"}`)

	err := handler.Register(c)
	require.Error(t, err)
}

func TestUserHandler_Login(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	input := usecase.LoginInput{Email: "admin@example.com", Password: "correct horse battery"}
	output := &usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{ID: uuid.New(), Email: "admin@example.com"},
	}
	uc.EXPECT().Login(mock.Anything, input).Return(output, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestUserHandler_Login_MalformedBody(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Logout(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Logout(mock.Anything, usecase.LogoutInput{RefreshToken: "refresh-token"}).Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout",
		`{"refreshToken":"refresh-token"}`)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetProfile(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "admin@example.com", Theme: entity.ThemeSystem}
	uc.EXPECT().GetProfile(mock.Anything, userID).Return(user, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/me", "")
	c.Set(middleware.UserIDKey, userID)

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestUserHandler_GetProfile_MissingAuthContext(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/me", "")

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdatePreferences(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "admin@example.com", Theme: entity.ThemeDark}
	uc.EXPECT().UpdateThemePreference(mock.Anything, userID, entity.ThemeDark).Return(user, nil)

	c, rec := newTestContext(t, http.MethodPut, "/api/me/preferences", `{"theme":"dark"}`)
	c.Set(middleware.UserIDKey, userID)

	require.NoError(t, handler.UpdatePreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dark")
}

func TestUserHandler_UpdatePreferences_UnknownTheme(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.Default())

	c, _ := newTestContext(t, http.MethodPut, "/api/me/preferences", `{"theme":"sepia"}`)
	c.Set(middleware.UserIDKey, uuid.New())

	err := handler.UpdatePreferences(c)
	require.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
