package handlers

import (
	"net/http"

	"github.com/journalapp/backend/internal/models"
	"github.com/journalapp/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository     repositories.UserRepository
	followerRepository repositories.FollowerRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followerRepo repositories.FollowerRepository) *UserHandler {
	return &UserHandler{
		userRepository:     userRepo,
		followerRepository: followerRepo,
	}
}

// RegisterUserRoutes registers the public user directory route
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo) {
	e.GET("/users", h.GetUsers)
}

// RegisterProfileRoutes registers the JWT-protected profile route
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
}

// GetUsers lists all users with their incoming follower counts
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		count, err := h.followerRepository.GetFollowersCount(user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		summaries = append(summaries, models.UserSummary{
			ID:             user.ID,
			Username:       user.Username,
			Email:          user.Email,
			FollowersCount: count,
		})
	}

	return c.JSON(http.StatusOK, summaries)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username": user.Username,
		"email":    user.Email,
	})
}
