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

// PlatformHandler holds dependencies for platform-related handlers.
type PlatformHandler struct {
	uc     usecase.PlatformUsecase
	logger *slog.Logger
}

// NewPlatformHandler is the constructor for PlatformHandler, injected by Fx.
func NewPlatformHandler(uc usecase.PlatformUsecase, logger *slog.Logger) *PlatformHandler {
	return &PlatformHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the platform listing request, optionally filtered by ?search=.
func (h *PlatformHandler) List(c echo.Context) error {
	platforms, err := h.uc.ListPlatforms(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, platforms, "Platforms retrieved successfully")
}

// Get handles the single platform request.
func (h *PlatformHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid platform ID")
	}

	platform, err := h.uc.GetPlatform(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, platform, "Platform retrieved successfully")
}

// Create handles the platform creation request.
func (h *PlatformHandler) Create(c echo.Context) error {
	var input usecase.PlatformInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid platform input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	platform, err := h.uc.CreatePlatform(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, platform, "Platform created successfully")
}

// Update handles the platform update request.
func (h *PlatformHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid platform ID")
	}

	var input usecase.PlatformInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid platform input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	platform, err := h.uc.UpdatePlatform(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, platform, "Platform updated successfully")
}

// Delete handles the platform deletion request. Subscriptions sold on the
// platform are removed with it.
func (h *PlatformHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid platform ID")
	}

	if err := h.uc.DeletePlatform(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Platform deleted successfully")
}
