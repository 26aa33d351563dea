package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/controllers"
	"github.com/arsenal-school/crm-backend/internal/app/migrations"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/app/routes"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/config"
	"github.com/arsenal-school/crm-backend/internal/db"
	"github.com/arsenal-school/crm-backend/internal/middleware"
	"github.com/arsenal-school/crm-backend/internal/pkg/auth"
	"github.com/arsenal-school/crm-backend/internal/pkg/helpers"
	"github.com/arsenal-school/crm-backend/internal/pkg/logger"
	"github.com/arsenal-school/crm-backend/internal/seed"
)

// Dependencies holds everything the server needs
type Dependencies struct {
	Config      *config.Config
	DB          *db.PostgresDB
	JWTService  *auth.JWTService
	Controllers *controllers.Controllers
}

// LoadConfigAndSetupLogger loads configuration and configures the logger
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})

	return cfg, nil
}

// SetupDatabase connects to Postgres, applies migrations, and seeds the
// default manager account.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seed.Run(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services, and controllers
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 0),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 0),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database)
	svc := services.NewServices(repos, jwtService)

	return &Dependencies{
		Config:      cfg,
		DB:          database,
		JWTService:  jwtService,
		Controllers: controllers.NewControllers(svc),
	}
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	return router
}
