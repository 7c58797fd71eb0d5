package handlers

import (
	"net/http"
	"strconv"

	"github.com/journalapp/backend/internal/models"
	"github.com/journalapp/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followerRepository repositories.FollowerRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followerRepo repositories.FollowerRepository) *FollowHandler {
	return &FollowHandler{followerRepository: followerRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow/:user_id", h.FollowUser)
	g.DELETE("/unfollow/:user_id", h.UnfollowUser)
}

// FollowUser creates a follow edge from the acting user to the target user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	// Check if already following
	isFollowing, err := h.followerRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusBadRequest, "You are already following this user")
	}

	follow := &models.Follower{
		FollowerID: currentUserID,
		FollowedID: uint(targetID),
	}

	if err := h.followerRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"msg": "Successfully followed user"})
}

// UnfollowUser removes the follow edge from the acting user to the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followerRepository.DeleteFollow(currentUserID, uint(targetID)); err != nil {
		if err == repositories.ErrNotFollowing {
			return echo.NewHTTPError(http.StatusBadRequest, "You are not following this user")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Successfully unfollowed user"})
}
