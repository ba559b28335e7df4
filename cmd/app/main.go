package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wichananm65/advocate-directory/internal/advocate"
	"github.com/wichananm65/advocate-directory/internal/config"
	"github.com/wichananm65/advocate-directory/internal/directory"
	"github.com/wichananm65/advocate-directory/internal/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger, err := logging.Setup(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo := openRepository(ctx, cfg)
	defer closeRepo()

	advocateService := advocate.NewService(repo,
		advocate.WithFallback(advocate.SeedData()),
		advocate.WithSeedEnabled(cfg.AllowSeed),
	)
	advocateHandler := advocate.NewHandler(advocateService)

	holder := directory.NewHolder()
	engine, err := directory.NewEngine(cfg.FilterCacheSize)
	if err != nil {
		log.Fatal(err)
	}
	directoryService := directory.NewService(holder, engine, directory.NewLoader(advocateService, holder))
	directoryHandler := directory.NewHandler(directoryService)

	// first load runs in the background; views report loading until it lands
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
		if _, err := directoryService.Refresh(loadCtx); err != nil {
			logger.Warn("initial directory load did not complete", "error", err)
		}
	}()

	app := newApp(cfg, advocateHandler, directoryHandler)

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newApp registers public routes first, then the JWT middleware, then protected routes.
func newApp(cfg config.Config, advocates *advocate.Handler, dir *directory.Handler) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "advocate-directory"})
	app.Use(recover.New())
	setupCORS(app, cfg.CORSOrigins)
	app.Use(checkMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	advocates.RegisterPublicRoutes(app)
	dir.RegisterPublicRoutes(app)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set, protected routes are disabled")
		return app
	}
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	advocates.RegisterProtectedRoutes(app)
	dir.RegisterProtectedRoutes(app)
	return app
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// openRepository uses Postgres when DATABASE_URL is set and the bundled seed data otherwise.
// An unreachable database is not fatal: the advocate service serves its fallback data.
func openRepository(ctx context.Context, cfg config.Config) (advocate.Repository, func()) {
	if cfg.DatabaseURL == "" {
		slog.Info("DATABASE_URL is not set, using in-memory seed data")
		return advocate.NewInMemoryRepository(advocate.SeedData()), func() {}
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	repo := advocate.NewPostgresRepository(db)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		slog.Warn("database not reachable, advocates will be served from seed data", "error", err)
	} else if err := repo.EnsureSchema(pingCtx); err != nil {
		slog.Warn("could not ensure advocates schema", "error", err)
	}
	return repo, func() { _ = db.Close() }
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	slog.Debug("request",
		"method", c.Method(),
		"url", c.OriginalURL(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}
