package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "subhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrCustomerNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CUSTOMER_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_RendersWrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	// Handlers attach stack traces before returning; unwrapping still works.
	m.HandleHTTPError(errors.WithStack(domainerrors.ErrInvalidCredentials), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestErrorMiddleware_RendersEchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorBecomesInternal(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// The raw error never leaks to the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
