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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	appControllers "github.com/haca/placement/internal/app/controllers"
	appMigrations "github.com/haca/placement/internal/app/migrations"
	appRepos "github.com/haca/placement/internal/app/repositories"
	appRoutes "github.com/haca/placement/internal/app/routes"
	appServices "github.com/haca/placement/internal/app/services"
	"github.com/haca/placement/internal/config"
	"github.com/haca/placement/internal/db"
	appMiddleware "github.com/haca/placement/internal/middleware"
	"github.com/haca/placement/internal/pkg/analysis"
	pkgAuth "github.com/haca/placement/internal/pkg/auth"
	"github.com/haca/placement/internal/pkg/cache"
	"github.com/haca/placement/internal/pkg/filestorage"
	"github.com/haca/placement/internal/pkg/helpers"
	"github.com/haca/placement/internal/pkg/logger"
	"github.com/haca/placement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	RegistrationService *appServices.RegistrationService
	StudentService      *appServices.StudentService
	SearchService       *appServices.SearchService
	AnalysisService     *appServices.AnalysisService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	SearchController    *appControllers.SearchController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	StudentCache        *cache.StudentCache
	Analyzer            *analysis.Analyzer
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects to Redis when an address is configured. Returns nil
// when Redis is disabled; the cache layer treats a nil client as a no-op.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("Redis not configured, candidate caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, candidate caching disabled")
		_ = client.Close()
		return nil
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return client
}

// SetupAnalyzer creates the Gemini client when an API key is configured.
// Returns nil without a key; the analysis endpoint then reports itself
// unavailable.
func SetupAnalyzer(cfg *config.Config, lgr zerolog.Logger) *analysis.Analyzer {
	if cfg.Gemini.APIKey == "" {
		lgr.Warn().Msg("Gemini API key not configured, skill analysis disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	analyzer, err := analysis.NewAnalyzer(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		lgr.Warn().Err(err).Msg("Failed to initialize Gemini client, skill analysis disabled")
		return nil
	}

	lgr.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")
	return analyzer
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage base URL must match the static file serving endpoint
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.StudentCache = cache.NewStudentCache(redisClient, cfg.CacheTTL(), lgr)
	deps.Analyzer = SetupAnalyzer(cfg, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.UserRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.SkillRepository,
		deps.AuthService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.FileStorage,
		deps.StudentCache,
		lgr,
	)
	deps.SearchService = appServices.NewSearchService(
		deps.Repos.StudentRepository,
		deps.Repos.SkillRepository,
		deps.StudentCache,
		lgr,
	)
	deps.AnalysisService = appServices.NewAnalysisService(deps.Analyzer, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.RegistrationService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.SearchController = appControllers.NewSearchController(deps.SearchService, deps.AnalysisService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SearchController,
		deps.AuthMiddleware,
	)

	return router
}
