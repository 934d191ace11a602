package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"subhub/internal/domain/entity"
	mockUC "subhub/internal/mocks/usecase"
	"subhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	uc := mockUC.NewMockDashboardUsecase(t)
	handler := NewDashboardHandler(uc, slog.Default())

	summary := &usecase.DashboardSummary{
		Stats: entity.DashboardStats{TotalCustomers: 3, ActiveSubscriptions: 2, TotalRevenue: 42.5},
	}
	uc.EXPECT().GetStats(mock.Anything, entity.TimeFrame30Days).Return(summary, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/stats?timeframe=30days", "")

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCustomers":3`)
}

func TestDashboardHandler_GetStats_DefaultsToAllTime(t *testing.T) {
	uc := mockUC.NewMockDashboardUsecase(t)
	handler := NewDashboardHandler(uc, slog.Default())

	uc.EXPECT().GetStats(mock.Anything, entity.TimeFrameAll).Return(&usecase.DashboardSummary{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/stats", "")

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler_GetStats_InvalidTimeFramePropagates(t *testing.T) {
	uc := mockUC.NewMockDashboardUsecase(t)
	handler := NewDashboardHandler(uc, slog.Default())

	uc.EXPECT().
		GetStats(mock.Anything, entity.TimeFrame("fortnight")).
		Return(nil, assert.AnError)

	c, _ := newTestContext(t, http.MethodGet, "/api/dashboard/stats?timeframe=fortnight", "")

	err := handler.GetStats(c)
	assert.Error(t, err)
}
