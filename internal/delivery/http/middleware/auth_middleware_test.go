package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"subhub/internal/domain/service"
	mockSvc "subhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.TokenClaims{UserID: userID, TokenType: "access"}, nil)

	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, userID, c.Get(UserIDKey))

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearerToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	next := func(c echo.Context) error { return nil }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer expired-token")

	next := func(c echo.Context) error { return nil }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
