package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"brilliantstylist/docs"
	"brilliantstylist/internal/auth"
	"brilliantstylist/internal/cache"
	"brilliantstylist/internal/config"
	"brilliantstylist/internal/database"
	"brilliantstylist/internal/database/migration"
	"brilliantstylist/internal/events"
	"brilliantstylist/internal/game"
	handlers "brilliantstylist/internal/http/handler"
	"brilliantstylist/internal/http/middleware"
	"brilliantstylist/internal/logger"
	"brilliantstylist/internal/metrics"
	"brilliantstylist/internal/otel"
	"brilliantstylist/internal/repository/postgres"
	"brilliantstylist/internal/service"
	"brilliantstylist/internal/storage"
)

// Uploads are capped at 10 MiB; larger bodies get 413.
const bodyLimit = 10 << 20

// @title						Brilliant Stylist API
// @version					1.0
// @description				Party game backend: styling prompts, photo uploads, peer votes and a leaderboard.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Location())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = multierr.Append(err, shutdownTracing(shutCtx))
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return err
	}

	outfits, err := storage.NewMinIO(ctx, cfg.MinIO, cfg.MinIO.OutfitBucket)
	if err != nil {
		return err
	}
	avatars, err := storage.NewMinIO(ctx, cfg.MinIO, cfg.MinIO.AvatarBucket)
	if err != nil {
		return err
	}

	var board cache.LeaderboardCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { err = multierr.Append(err, rdb.Close()) }()
		board = &cache.RedisLeaderboard{R: rdb, TTL: cfg.Redis.LeaderboardTTL()}
	}

	var pub events.Publisher = events.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() { err = multierr.Append(err, kp.Close()) }()
		pub = kp
	}

	gameMetrics, err := metrics.NewGame(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	sessions := game.NewSessions(cfg.Game.ChallengeSeconds, time.Second, log)
	defer sessions.Close()

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL())

	// Initialize repositories and services
	users := postgres.NewUserPostgres(db)
	prompts := postgres.NewPromptPostgres(db)
	submissions := postgres.NewSubmissionPostgres(db)
	votes := postgres.NewVotePostgres(db)

	app := newApp(cfg, log, httpMetrics, handlers.Deps{
		DB:          db,
		Tokens:      tokens,
		AdminKey:    cfg.Auth.AdminKey,
		Auth:        service.NewAuthService(users, tokens),
		Prompts:     service.NewPromptService(prompts),
		Timers:      sessions,
		Submissions: service.NewSubmissionService(outfits, submissions, prompts, board, pub, gameMetrics, log),
		Votes:       service.NewVoteService(votes, submissions, prompts, users, board, pub, gameMetrics, log),
		Leaderboard: service.NewLeaderboardService(votes, board, cfg.Game.LeaderboardSize, log),
		Profiles:    service.NewProfileService(users, submissions, avatars, board, log),
	})

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		log.Info("http server started", zap.String("component", "server"), zap.String("addr", addr))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("received signal, initiating shutdown", zap.String("component", "server"))
	return app.ShutdownWithTimeout(10 * time.Second)
}

func newApp(cfg *config.AppConfig, log *zap.Logger, httpMetrics *middleware.PrometheusMiddleware, deps handlers.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "brilliant-stylist",
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	// Register global middleware
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host", cfg.AppHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, deps)

	return app
}
