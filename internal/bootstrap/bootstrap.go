package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otabek/juniorhub/internal/app/admin"
	"github.com/otabek/juniorhub/internal/app/controllers"
	"github.com/otabek/juniorhub/internal/app/migrations"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/app/routes"
	"github.com/otabek/juniorhub/internal/app/services"
	"github.com/otabek/juniorhub/internal/config"
	"github.com/otabek/juniorhub/internal/db"
	"github.com/otabek/juniorhub/internal/middleware"
	"github.com/otabek/juniorhub/internal/pkg/auth"
	"github.com/otabek/juniorhub/internal/pkg/filestorage"
	"github.com/otabek/juniorhub/internal/pkg/logger"
	"github.com/otabek/juniorhub/internal/seed"
)

// Dependencies holds the assembled application object graph.
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Registry    *admin.Registry
	FileStorage *filestorage.LocalStorage
	JWTService  *auth.JWTService

	Controllers    routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase connects to Postgres, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrations.NewMigrator(dbPool).MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := seed.CreateDefaultData(seedCtx, dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default data")
	}

	return dbPool, nil
}

// BuildDependencies assembles repositories, services, controllers and
// middleware over the connected pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Server.MediaPath, cfg.Server.MediaURL)
	if err != nil {
		return nil, fmt.Errorf("initializing media storage: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.JWTTokenExpiry(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := repositories.New(dbPool)
	svcs := services.New(repos, storage, jwtService)
	registry := admin.NewRegistry()

	entityCfg := func(name string) admin.EntityConfig {
		cfg, ok := registry.Get(name)
		if !ok {
			panic("missing admin configuration for entity " + name)
		}
		return cfg
	}

	deps := &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Registry:    registry,
		FileStorage: storage,
		JWTService:  jwtService,
		Controllers: routes.Controllers{
			Index:      controllers.NewIndexController(),
			Months:     controllers.NewMonthController(svcs.Months, entityCfg("months")),
			Heroes:     controllers.NewHeroController(svcs.Heroes, entityCfg("heroes")),
			Mentors:    controllers.NewMentorController(svcs.Mentors, entityCfg("mentors")),
			Directions: controllers.NewDirectionController(svcs.Directions, entityCfg("directions")),
			News:       controllers.NewNewsController(svcs.News, entityCfg("news")),
			Auth:       controllers.NewAuthController(svcs.Auth),
			Admin:      controllers.NewAdminController(registry),
		},
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}
	return deps, nil
}

// SetupRouter builds the gin engine with global middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
