package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skillswap/backend/internal/meeting"
	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/services"
)

// SwapHandler handles HTTP requests for the swap request lifecycle
type SwapHandler struct {
	swapService *services.SwapService
}

// NewSwapHandler creates a new SwapHandler
func NewSwapHandler(swapService *services.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

// RegisterSwapRoutes registers swap request routes
func (h *SwapHandler) RegisterSwapRoutes(g *echo.Group) {
	g.POST("/swaps", h.CreateSwap)
	g.GET("/swaps/inbox", h.GetInbox)
	g.GET("/swaps/outbox", h.GetOutbox)
	g.GET("/swaps/:id", h.GetSwap)
	g.POST("/swaps/:id/accept", h.AcceptSwap)
	g.POST("/swaps/:id/reject", h.RejectSwap)
	g.DELETE("/swaps/:id", h.CancelSwap)
}

// CreateSwap handles sending a new swap request
func (h *SwapHandler) CreateSwap(c echo.Context) error {
	userID := c.Get("userID").(uint)

	var req models.CreateSwapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	swap, err := h.swapService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusCreated, swap)
}

// GetInbox retrieves swap requests addressed to the authenticated user
func (h *SwapHandler) GetInbox(c echo.Context) error {
	userID := c.Get("userID").(uint)

	requests, err := h.swapService.Inbox(userID)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GetOutbox retrieves swap requests the authenticated user has sent
func (h *SwapHandler) GetOutbox(c echo.Context) error {
	userID := c.Get("userID").(uint)

	requests, err := h.swapService.Outbox(userID)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GetSwap retrieves a single swap request the user participates in
func (h *SwapHandler) GetSwap(c echo.Context) error {
	userID := c.Get("userID").(uint)
	requestID, err := swapID(c)
	if err != nil {
		return err
	}

	swap, err := h.swapService.Get(requestID, userID)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusOK, swap)
}

// AcceptSwap accepts a pending swap request and returns it with the issued
// meeting link
func (h *SwapHandler) AcceptSwap(c echo.Context) error {
	userID := c.Get("userID").(uint)
	requestID, err := swapID(c)
	if err != nil {
		return err
	}

	swap, err := h.swapService.Accept(c.Request().Context(), requestID, userID)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusOK, swap)
}

// RejectSwap rejects a pending swap request
func (h *SwapHandler) RejectSwap(c echo.Context) error {
	userID := c.Get("userID").(uint)
	requestID, err := swapID(c)
	if err != nil {
		return err
	}

	swap, err := h.swapService.Reject(c.Request().Context(), requestID, userID)
	if err != nil {
		return swapError(err)
	}
	return c.JSON(http.StatusOK, swap)
}

// CancelSwap lets the sender withdraw their own pending swap request
func (h *SwapHandler) CancelSwap(c echo.Context) error {
	userID := c.Get("userID").(uint)
	requestID, err := swapID(c)
	if err != nil {
		return err
	}

	if err := h.swapService.Cancel(c.Request().Context(), requestID, userID); err != nil {
		return swapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func swapID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid swap request ID")
	}
	return uint(id), nil
}

// swapError maps lifecycle error kinds onto HTTP status codes
func swapError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrReceiverNotFound), errors.Is(err, services.ErrRequestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrAlreadyProcessed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, meeting.ErrProviderUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
