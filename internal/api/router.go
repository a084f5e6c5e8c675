package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillstack/blog-api/internal/api/handler"
	"github.com/quillstack/blog-api/internal/api/middleware"
	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
	"github.com/quillstack/blog-api/internal/core/service"
	"github.com/quillstack/blog-api/internal/infrastructure/config"
	mongodb "github.com/quillstack/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quillstack/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity pipeline (service + dispatcher) is constructed by the caller
// because its worker lifecycle outlives individual requests.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	recorder service.ActivityRecorder,
	activityService ports.ActivityService,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	postCache := redisdb.NewPostCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
	postService := service.NewPostService(postRepo, postCache, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(postService, activityService)
	authMiddleware := middleware.Auth(cfg.JWT.Secret)

	// --- Auth routes ---
	e.POST("/api/Authenticator/RegisterAsync", authHandler.Register)
	e.POST("/api/Authenticator/LoginAsync", authHandler.Login)

	// --- Blog routes (bearer token required) ---
	blog := e.Group("/api/Blog", authMiddleware)
	blog.GET("/GetAllPosts", blogHandler.GetAllPosts)
	blog.GET("/GetPostByID", blogHandler.GetPostByID)
	blog.GET("/GetTopXPosts", blogHandler.GetTopXPosts)
	blog.GET("/GetPostsByIdRange", blogHandler.GetPostsByIdRange)
	blog.GET("/GetPostByKeywords", blogHandler.GetPostByKeywords)
	blog.POST("/CreatePost", blogHandler.CreatePost)
	blog.PUT("/EditPost", blogHandler.EditPost)
	blog.DELETE("/DeletePost", blogHandler.DeletePost)
	blog.GET("/GetRecentActivity", blogHandler.GetRecentActivity,
		middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
