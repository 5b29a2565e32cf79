package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/repositories"
)

// ProfileHandler handles HTTP requests related to skill profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo}
}

// RegisterProfileRoutes registers skill profile routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/me", h.GetMyProfile)
	g.PUT("/profiles/me", h.UpsertMyProfile)
	g.DELETE("/profiles/me", h.DeleteMyProfile)
	g.GET("/profiles/:id", h.GetProfile)
}

// GetMyProfile retrieves the authenticated user's skill profile
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID := c.Get("userID").(uint)

	profile, err := h.profileRepository.GetProfileByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Skill profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpsertMyProfile creates or updates the authenticated user's skill profile
func (h *ProfileHandler) UpsertMyProfile(c echo.Context) error {
	userID := c.Get("userID").(uint)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile := &models.SkillProfile{
		UserID:        userID,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  models.Availability(req.Availability),
		Visibility:    *req.Visibility,
	}

	if err := h.profileRepository.UpsertProfile(c.Request().Context(), profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	saved, err := h.profileRepository.GetProfileByUserID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteMyProfile removes the authenticated user's skill profile
func (h *ProfileHandler) DeleteMyProfile(c echo.Context) error {
	userID := c.Get("userID").(uint)

	if err := h.profileRepository.DeleteProfile(c.Request().Context(), userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Skill profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProfile retrieves another user's skill profile by user ID
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.profileRepository.GetProfileByUserID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Skill profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Invisible profiles are only shown to their owner
	if !profile.Visibility && profile.UserID != c.Get("userID").(uint) {
		return echo.NewHTTPError(http.StatusNotFound, "Skill profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}
