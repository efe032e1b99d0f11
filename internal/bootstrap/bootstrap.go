package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/ucsbapi/internal/app/controllers"
	appMigrations "github.com/yigit/ucsbapi/internal/app/migrations"
	appRepos "github.com/yigit/ucsbapi/internal/app/repositories"
	memoryRepos "github.com/yigit/ucsbapi/internal/app/repositories/memory"
	appRoutes "github.com/yigit/ucsbapi/internal/app/routes"
	appServices "github.com/yigit/ucsbapi/internal/app/services"
	"github.com/yigit/ucsbapi/internal/config"
	"github.com/yigit/ucsbapi/internal/db"
	appMiddleware "github.com/yigit/ucsbapi/internal/middleware"
	pkgAuth "github.com/yigit/ucsbapi/internal/pkg/auth"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
	"github.com/yigit/ucsbapi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  logger.ParseFormat(cfg.Logging.Format),
		Service: "ucsbapi",
	})

	lgr := logger.Get()
	lgr.Info().
		Str("logLevel", logger.ParseLevel(cfg.Logging.Level).String()).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations. The memory
// driver needs no connection and yields a nil database.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Info().Msg("Using in-memory database; data is lost on shutdown")
		return nil, nil
	}

	database, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// ConnectDatabase opens the PostgreSQL pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	return database, nil
}

// RunMigrations applies the embedded SQL migrations
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	return nil
}

// NewJWTService builds the token service from the jwt config section
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
// database may be nil when the memory driver is configured.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		repos, err := memoryRepos.NewRepositories()
		if err != nil {
			return nil, err
		}
		deps.Repos = repos
	default:
		if database == nil {
			return nil, fmt.Errorf("driver %q requires a database connection", cfg.Database.Driver)
		}
		deps.Repos = appRepos.NewRepositories(database.Pool)
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, deps.Repos, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.Services = appServices.NewServices(deps.Repos)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	deps.JWTService = NewJWTService(cfg)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
	)

	appRoutes.SetupRouter(router, deps.AuthMiddleware, deps.Controllers.Resources()...)

	return router
}
