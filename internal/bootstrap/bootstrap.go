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

	"github.com/edupulse/edupulse/internal/app/controllers"
	"github.com/edupulse/edupulse/internal/app/migrations"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/app/routes"
	"github.com/edupulse/edupulse/internal/app/services"
	"github.com/edupulse/edupulse/internal/config"
	"github.com/edupulse/edupulse/internal/db"
	"github.com/edupulse/edupulse/internal/middleware"
	"github.com/edupulse/edupulse/internal/pkg/auth"
	"github.com/edupulse/edupulse/internal/pkg/helpers"
	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *repositories.Repositories
	JWTService  *auth.JWTService
	Controllers routes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations,
// and seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg); err != nil {
		// Seeding failure should not block startup
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(dbPool)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDurationWithDefault(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDurationWithDefault(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.FacultyRepository,
		deps.JWTService,
	)
	departmentService := services.NewDepartmentService(deps.Repos.DepartmentRepository)
	courseService := services.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
	)
	facultyService := services.NewFacultyService(
		deps.Repos.FacultyRepository,
		deps.Repos.DepartmentRepository,
	)
	feedbackService := services.NewFeedbackService(
		deps.Repos.FeedbackRepository,
		deps.Repos.CourseRepository,
	)
	metricService := services.NewMetricService(
		deps.Repos.MetricRepository,
		deps.Repos.FeedbackRepository,
	)
	dashboardService := services.NewDashboardService(
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.FeedbackRepository,
	)
	exportService := services.NewExportService(deps.Repos.MetricRepository)

	deps.Controllers = routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		User:      controllers.NewUserController(authService),
		Dept:      controllers.NewDepartmentController(departmentService),
		Course:    controllers.NewCourseController(courseService),
		Faculty:   controllers.NewFacultyController(facultyService),
		Feedback:  controllers.NewFeedbackController(feedbackService),
		Metric:    controllers.NewMetricController(metricService),
		Dashboard: controllers.NewDashboardController(dashboardService),
		Report:    controllers.NewReportController(exportService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	routes.SetupRouter(router, deps.Controllers, deps.JWTService)

	return router
}
