package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vidtube/docs"
	"vidtube/internal/auth"
	"vidtube/internal/config"
	"vidtube/internal/database"
	"vidtube/internal/database/migration"
	handlers "vidtube/internal/http/handler"
	"vidtube/internal/http/middleware"
	"vidtube/internal/logger"
	"vidtube/internal/otel"
	"vidtube/internal/ratelimit"
	"vidtube/internal/repository/mongodb"
	"vidtube/internal/service"
	"vidtube/internal/storage"
)

// @title VidTube API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Location())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, zl)
	if err != nil {
		zl.Fatal("tracing_init_failed", zap.Error(err))
	}

	client, db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = migration.EnsureIndexes(migrateCtx, db, zl)
	cancel()
	if err != nil {
		zl.Fatal("failed to ensure indexes", zap.Error(err))
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		zl.Fatal("failed to initialize object storage", zap.Error(err))
	}

	tokens, err := auth.NewTokenService(cfg.Auth.TokenKey, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	if err != nil {
		zl.Fatal("failed to initialize token service", zap.Error(err))
	}

	// Repositories
	users := mongodb.NewUserMongo(db)
	videos := mongodb.NewVideoMongo(db)
	comments := mongodb.NewCommentMongo(db)
	likes := mongodb.NewLikeMongo(db)
	subs := mongodb.NewSubscriptionMongo(db)
	tweets := mongodb.NewTweetMongo(db)
	playlists := mongodb.NewPlaylistMongo(db)

	svc := handlers.Services{
		Users: service.NewUserService(users, tokens, objStore, zl),
		Videos: service.NewVideoService(service.VideoRepos{
			Videos:    videos,
			Users:     users,
			Comments:  comments,
			Likes:     likes,
			Playlists: playlists,
		}, objStore, zl),
		Comments:      service.NewCommentService(comments, videos, likes),
		Likes:         service.NewLikeService(likes, videos, comments, tweets),
		Subscriptions: service.NewSubscriptionService(subs, users),
		Tweets:        service.NewTweetService(tweets, users, likes),
		Playlists:     service.NewPlaylistService(playlists, videos, users),
		Dashboard:     service.NewDashboardService(mongodb.NewDashboardMongo(db)),
	}

	limiter := ratelimit.NewWithIdleTTL(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
	defer limiter.Stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zl.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimitMB << 20,
	})

	// Register global middleware
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zl))
	app.Use(metrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, svc, handlers.RouteConfig{
		Ping: func(ctx context.Context) error { return database.Ping(ctx, client) },
		Cookies: handlers.CookieConfig{
			Secure:     cfg.Auth.SecureCookie,
			AccessTTL:  cfg.Auth.AccessTTL,
			RefreshTTL: cfg.Auth.RefreshTTL,
		},
		AuthLimiter: middleware.RateLimit(limiter),
	})

	go func() {
		addr := ":" + cfg.Port
		zl.Info("server_starting", zap.String("addr", addr), zap.String("env", cfg.Environment))
		if err := app.Listen(addr); err != nil {
			zl.Error("server_stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutting_down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("http_shutdown_failed", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		zl.Error("mongo_disconnect_failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		zl.Error("tracing_shutdown_failed", zap.Error(err))
	}
}
