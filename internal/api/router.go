package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/content-api/internal/api/handler"
	"github.com/inkpress/content-api/internal/api/middleware"
	"github.com/inkpress/content-api/internal/core/auth"
	"github.com/inkpress/content-api/internal/core/service"
	mongodb "github.com/inkpress/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkpress/content-api/internal/infrastructure/db/redis"
	"github.com/inkpress/content-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authorRepo := mongodb.NewAuthorRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	tokens := auth.NewTokenIssuer(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	authorService := service.NewAuthorService(authorRepo, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	postHandler := handler.NewPostHandler(postService)

	local := middleware.Authenticate(middleware.NewLocalStrategy(authService))
	bearer := middleware.Authenticate(middleware.NewBearerStrategy(tokens, userRepo))
	throttle := middleware.ThrottleLogin(redisdb.NewLoginLimiter(rdb))

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login, throttle, local)
	e.GET("/profile", authHandler.Profile, bearer)

	// --- Author routes (reads public, writes bearer-gated) ---
	e.GET("/authors", authorHandler.List)
	e.POST("/authors", authorHandler.Create, bearer)
	e.PUT("/authors/:id", authorHandler.Update, bearer)
	e.DELETE("/authors/:id", authorHandler.Delete, bearer)

	// --- Post routes (reads public, writes bearer-gated) ---
	e.GET("/posts", postHandler.List)
	e.POST("/posts", postHandler.Create, bearer)
	e.PUT("/posts/:id", postHandler.Update, bearer)
	e.DELETE("/posts/:id", postHandler.Delete, bearer)

	// --- Observability ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
