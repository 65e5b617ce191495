package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/santamartha/hrportal/internal/app/controllers"
	appMigrations "github.com/santamartha/hrportal/internal/app/migrations"
	appRepos "github.com/santamartha/hrportal/internal/app/repositories"
	"github.com/santamartha/hrportal/internal/app/repositories/memstore"
	appRoutes "github.com/santamartha/hrportal/internal/app/routes"
	appServices "github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/config"
	"github.com/santamartha/hrportal/internal/db"
	appMiddleware "github.com/santamartha/hrportal/internal/middleware"
	pkgAuth "github.com/santamartha/hrportal/internal/pkg/auth"
	"github.com/santamartha/hrportal/internal/pkg/logger"
	"github.com/santamartha/hrportal/internal/seed"
	schema "github.com/santamartha/hrportal/migrations"
)

// Storage is the lifecycle surface shared by the Postgres pool and the in-memory store
type Storage interface {
	Ping(ctx context.Context) error
	Close()
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Storage        Storage
	Stores         appServices.Stores
	Services       *appServices.Services
	Tokens         *pkgAuth.TokenService
	Hasher         pkgAuth.PasswordHasher
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured store. For Postgres it also applies the embedded migrations.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (Storage, appServices.Stores, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory storage; data is lost on restart")
		store := memstore.New()
		return store, appServices.Stores{
			Users:        store.Users(),
			Courses:      store.Courses(),
			JobOffers:    store.JobOffers(),
			Enrollments:  store.Enrollments(),
			Applications: store.Applications(),
		}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, appServices.Stores{}, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFS(ctx, schema.Files); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, appServices.Stores{}, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(database.Pool)
	return database, appServices.Stores{
		Users:        repos.UserRepository,
		Courses:      repos.CourseRepository,
		JobOffers:    repos.JobOfferRepository,
		Enrollments:  repos.EnrollmentRepository,
		Applications: repos.ApplicationRepository,
	}, nil
}

// BuildDependencies initializes services, middleware and controllers, then seeds default data.
func BuildDependencies(ctx context.Context, cfg *config.Config, storage Storage, stores appServices.Stores, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Storage: storage,
		Stores:  stores,
		Logger:  lgr,
		Hasher:  pkgAuth.NewBcryptHasher(),
	}

	deps.Tokens = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey: cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(stores, deps.Tokens, deps.Hasher, time.Now)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Tokens, stores.Users)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.Auth),
		Users:        appControllers.NewUserController(deps.Services.Users),
		Courses:      appControllers.NewCourseController(deps.Services.Courses),
		JobOffers:    appControllers.NewJobOfferController(deps.Services.JobOffers),
		Enrollments:  appControllers.NewEnrollmentController(deps.Services.Enrollments),
		Applications: appControllers.NewApplicationController(deps.Services.Applications),
		Reports:      appControllers.NewReportController(deps.Services.Reports),
		Health:       appControllers.NewHealthController(storage, cfg.Database.Driver),
	}

	if cfg.Seed.Enabled {
		admin := seed.Admin{
			Username: cfg.Seed.AdminUsername,
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
		}
		if err := seed.CreateDefaultData(ctx, stores.Users, deps.Hasher, admin, lgr); err != nil {
			// Startup continues; the admin can be created later
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps
}

// corsConfig turns the configured origins into a gin-contrib/cors config
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition", appMiddleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
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

	appMiddleware.ConfigureValidator()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		cors.New(corsConfig(cfg.CORS.AllowOrigins)),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.Options{
		PublicAdminRoutes: cfg.Security.PublicAdminRoutes,
	})

	return router
}
