package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skillswap/backend/internal/matching"
	"github.com/skillswap/backend/internal/repositories"
)

// MatchHandler serves ranked swap partner suggestions
type MatchHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(profileRepo repositories.ProfileRepository) *MatchHandler {
	return &MatchHandler{profileRepository: profileRepo}
}

// RegisterMatchRoutes registers matching routes
func (h *MatchHandler) RegisterMatchRoutes(g *echo.Group) {
	g.GET("/matches", h.GetMatches)
}

// GetMatches computes the ranked candidate list for the authenticated user.
// Optional query params: limit (max results), min_score (drop threshold).
func (h *MatchHandler) GetMatches(c echo.Context) error {
	userID := c.Get("userID").(uint)
	ctx := c.Request().Context()

	requester, err := h.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Create a skill profile before requesting matches")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	candidates, err := h.profileRepository.ListVisibleProfiles(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	cfg := matching.Config{}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		cfg.MaxResults = limit
	}
	if raw := c.QueryParam("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil || minScore < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid min_score")
		}
		cfg.MinScore = minScore
	}

	matches, err := matching.RankCandidates(requester, candidates, cfg)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, matches)
}
