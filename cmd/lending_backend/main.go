package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/adapters/notify"
	"github.com/SscSPs/lending_ledger_app/internal/adapters/receipts"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/services"
	"github.com/SscSPs/lending_ledger_app/internal/handlers"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/SscSPs/lending_ledger_app/internal/platform/analytics"
	"github.com/SscSPs/lending_ledger_app/internal/platform/config"
	"github.com/SscSPs/lending_ledger_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/lending_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/lending_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Lending Ledger API
// @version 1.0
// @description Client ledgers, bank balances and the transaction lifecycle of a lending business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	ctx := middleware.WithLogger(context.Background(), logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	if cfg.AuditBackend == config.AuditBackendMongo {
		mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			logger.Error("Failed to connect audit store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if derr := mongoClient.Disconnect(disconnectCtx); derr != nil {
				logger.Error("Error disconnecting audit store", slog.String("error", derr.Error()))
			}
		}()
		repos.AuditRepo = mongodb.NewAuditRepository(mongodb.NewMongoProvider(mongoClient, cfg.MongoDatabase))
		logger.Info("Audit log stored in MongoDB", slog.String("database", cfg.MongoDatabase))
	}

	uploader, err := newReceiptUploader(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize receipt storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := analytics.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	notifier := notify.Multi{notify.LogNotifier{}, notify.NewPosthogNotifier(posthogClient)}
	serviceContainer := services.NewServiceContainer(cfg, repos, uploader, notifier)

	rateLimiter, err := newRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)
	if store, ok := uploader.(*receipts.MemoryStore); ok {
		r.GET("/receipts/*name", func(c *gin.Context) {
			body, found := store.Get(strings.TrimPrefix(c.Param("name"), "/"))
			if !found {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, http.DetectContentType(body), body)
		})
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending "up" migration over a short-lived
// database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return errors.Join(sourceErr, dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func newReceiptUploader(ctx context.Context, cfg *config.Config) (portssvc.ReceiptUploader, error) {
	if cfg.ReceiptBackend == config.ReceiptBackendGCS {
		store, err := receipts.NewGCSStore(ctx, cfg.GCSBucket, cfg.ReceiptURLTTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return receipts.NewMemoryStore("http://localhost:" + cfg.Port + "/receipts"), nil
}

func newRateLimiter(rate string) (*limiter.Limiter, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memorystore.NewStore(), parsed), nil
}
