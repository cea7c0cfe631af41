package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/config"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/extract"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/handler"
	applog "github.com/AnshulBytes112/DsceAlumniConnect/internal/log"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/metrics"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/middleware"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/repository"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/security"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/storage"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/token"
	"github.com/AnshulBytes112/DsceAlumniConnect/pkg/database"
	"github.com/AnshulBytes112/DsceAlumniConnect/pkg/redis"
)

func main() {
	cfg := config.Load()
	logger := applog.New(cfg.Environment)

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	fileStore, err := storage.NewDiskStore(cfg.UploadBaseDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	rateLimiter := security.NewRateLimiter(security.RateLimiterConfig{
		Redis:    redisClient,
		Limit:    cfg.RateLimitPerMinute,
		Interval: cfg.RateLimitInterval,
	})

	userRepo := repository.NewUserRepository(db)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)
	oauthService := service.NewGoogleOAuthService(cfg)
	extractor := extract.NewRunner(
		cfg.ParserRuntime, cfg.ParserArgs, cfg.ParserScript, cfg.ParserDir,
		cfg.ParserTimeout, logger,
	)

	authService := service.NewAuthService(userRepo, fileStore, tokens, oauthService, collector, logger)
	profileService := service.NewProfileService(userRepo, fileStore, extractor, collector, logger)
	resumeService := service.NewResumeService(fileStore, extractor, collector, logger)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	fileHandler := handler.NewFileHandler(fileStore)

	router := setupRouter(cfg, registry,
		authHandler, profileHandler, resumeHandler, fileHandler,
		tokens, userRepo, rateLimiter,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}

func setupRouter(
	cfg *config.Config,
	registry *prometheus.Registry,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	resumeHandler *handler.ResumeHandler,
	fileHandler *handler.FileHandler,
	tokens *token.Service,
	userRepo domain.UserRepository,
	rateLimiter *security.RateLimiter,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/metrics", metrics.Handler(registry))

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
			})
		})

		auth := api.Group("/auth")
		auth.Use(rateLimiter.GinMiddleware())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleLogin)
			auth.GET("/google/url", authHandler.GoogleAuthURL)
			auth.GET("/google/callback", authHandler.GoogleCallback)
		}

		api.GET("/files/*path", fileHandler.Serve)

		protected := api.Group("/")
		protected.Use(middleware.Session(tokens, userRepo))
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/profile", profileHandler.GetProfile)
			protected.PUT("/profile", profileHandler.UpdateProfile)
			protected.PUT("/profile/picture", profileHandler.UpdateProfilePicture)
			protected.POST("/profile/resume", profileHandler.UploadResume)
			protected.POST("/profile/resume/reparse", profileHandler.ReparseResume)
			protected.POST("/resume/parse", resumeHandler.Parse)
		}
	}

	return router
}
