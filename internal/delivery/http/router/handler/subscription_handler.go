package handler

import (
	"log/slog"
	"net/http"

	"subhub/internal/delivery/http/response"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the subscription listing request. ?embed=details attaches the
// customer and platform to each record, ?search= filters embedded listings.
func (h *SubscriptionHandler) List(c echo.Context) error {
	embedDetails := c.QueryParam("embed") == "details"

	subscriptions, err := h.uc.ListSubscriptions(c.Request().Context(), c.QueryParam("search"), embedDetails)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// Get handles the single subscription request.
func (h *SubscriptionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	subscription, err := h.uc.GetSubscription(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription retrieved successfully")
}

// Create handles the subscription creation request.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var input usecase.SubscriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	subscription, err := h.uc.CreateSubscription(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription created successfully")
}

// Update handles the subscription update request.
func (h *SubscriptionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var input usecase.SubscriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	subscription, err := h.uc.UpdateSubscription(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription updated successfully")
}

// Delete handles the subscription deletion request.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.uc.DeleteSubscription(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription deleted successfully")
}
