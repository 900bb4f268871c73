package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/controllers"
	"github.com/adeemchu/studentportal/internal/app/migrations"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/app/routes"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/config"
	"github.com/adeemchu/studentportal/internal/db"
	"github.com/adeemchu/studentportal/internal/middleware"
	"github.com/adeemchu/studentportal/internal/pkg/auth"
	"github.com/adeemchu/studentportal/internal/pkg/helpers"
	"github.com/adeemchu/studentportal/internal/pkg/logger"
	"github.com/adeemchu/studentportal/internal/seed"
)

// Dependencies holds the constructed application graph.
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *controllers.Controllers
	JWTService  *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), database); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.Auth.SecretKey,
		TokenExpiry: helpers.ParseDuration(cfg.Auth.TokenExpiry, 12*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, jwtService)
	ctrls := controllers.NewControllers(svcs, jwtService)

	return &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Controllers: ctrls,
		JWTService:  jwtService,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	routes.RegisterRoutes(router, deps.Controllers)

	return router
}
