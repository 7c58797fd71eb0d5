package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/journalapp/backend/internal/models"
	"github.com/journalapp/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		commentRepository: commentRepo,
	}
}

// RegisterPublicPostRoutes registers the unauthenticated post read routes
func (h *PostHandler) RegisterPublicPostRoutes(e *echo.Echo) {
	e.GET("/posts", h.GetPosts)
	e.GET("/posts/:id", h.GetPost)
}

// RegisterPostRoutes registers the JWT-protected post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
}

// CreatePost creates a new post owned by the acting user
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		UserID:   currentUserID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created"})
}

// GetPosts lists all posts with their authors and comment counts
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for _, post := range posts {
		count, err := h.commentRepository.GetCommentsCount(post.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		summaries = append(summaries, models.PostSummary{
			ID:               post.ID,
			Title:            post.Title,
			Content:          post.Content,
			ImageURL:         post.ImageURL,
			Author:           post.User.Username,
			NumberOfComments: count,
		})
	}

	return c.JSON(http.StatusOK, summaries)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.commentRepository.GetCommentsCount(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail := models.PostDetail{
		PostSummary: models.PostSummary{
			ID:               post.ID,
			Title:            post.Title,
			Content:          post.Content,
			ImageURL:         post.ImageURL,
			Author:           post.User.Username,
			NumberOfComments: count,
		},
		CreatedAt: post.CreatedAt,
	}

	return c.JSON(http.StatusOK, detail)
}
