package router

import (
	"log"

	"github.com/journalapp/backend/internal/handlers"
	"github.com/journalapp/backend/internal/middleware"
	"github.com/journalapp/backend/internal/models"
	"github.com/journalapp/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, jwtSecret string) {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Follower{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followerRepo := repositories.NewPostgresFollowerRepository(db)

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, followerRepo)
	userHandler.RegisterUserRoutes(e)

	postHandler := handlers.NewPostHandler(postRepo, commentRepo)
	postHandler.RegisterPublicPostRoutes(e)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterPublicCommentRoutes(e)
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	protected := e.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
	log.Println("JWT authentication middleware applied to protected routes.")

	userHandler.RegisterProfileRoutes(protected)
	postHandler.RegisterPostRoutes(protected)
	commentHandler.RegisterCommentRoutes(protected)

	followHandler := handlers.NewFollowHandler(followerRepo)
	followHandler.RegisterFollowRoutes(protected)

	log.Println("All routes configured.")
}
