package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subhub/internal/delivery/http/validator"
	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	mockUC "subhub/internal/mocks/usecase"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCustomerHandler_List(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())

	customers := []*entity.Customer{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
	}
	uc.EXPECT().ListCustomers(mock.Anything, "").Return(customers, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/customers", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCustomerHandler_List_PassesSearchTerm(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())

	uc.EXPECT().ListCustomers(mock.Anything, "alice").Return([]*entity.Customer{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/customers?search=alice", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_Get_InvalidID(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/customers/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCustomerHandler_Create(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())

	input := usecase.CustomerInput{Name: "Alice", Email: "alice@example.com"}
	created := &entity.Customer{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	uc.EXPECT().CreateCustomer(mock.Anything, input).Return(created, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/customers",
		`{"name":"Alice","email":"alice@example.com"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestCustomerHandler_Create_ValidationFailure(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())

	// Missing email never reaches the use case.
	c, _ := newTestContext(t, http.MethodPost, "/api/customers", `{"name":"Alice"}`)

	err := handler.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCustomerHandler_Update(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())
	id := uuid.New()

	input := usecase.CustomerInput{Name: "Alice Smith", Email: "alice@example.com"}
	updated := &entity.Customer{ID: id, Name: "Alice Smith", Email: "alice@example.com"}
	uc.EXPECT().UpdateCustomer(mock.Anything, id, input).Return(updated, nil)

	c, rec := newTestContext(t, http.MethodPut, "/api/customers/"+id.String(),
		`{"name":"Alice Smith","email":"alice@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice Smith")
}

func TestCustomerHandler_Delete(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())
	id := uuid.New()

	uc.EXPECT().DeleteCustomer(mock.Anything, id).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/api/customers/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_Delete_NotFoundPropagates(t *testing.T) {
	uc := mockUC.NewMockCustomerUsecase(t)
	handler := NewCustomerHandler(uc, slog.Default())
	id := uuid.New()

	uc.EXPECT().DeleteCustomer(mock.Anything, id).Return(domainerrors.ErrCustomerNotFound)

	c, _ := newTestContext(t, http.MethodDelete, "/api/customers/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.Delete(c)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
