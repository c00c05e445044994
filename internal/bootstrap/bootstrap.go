package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	appControllers "github.com/hackathon-manager/hackathon/internal/app/controllers"
	appRepos "github.com/hackathon-manager/hackathon/internal/app/repositories"
	appRoutes "github.com/hackathon-manager/hackathon/internal/app/routes"
	appServices "github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/config"
	"github.com/hackathon-manager/hackathon/internal/db"
	appMiddleware "github.com/hackathon-manager/hackathon/internal/middleware"
	pkgAuth "github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/email"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/hackathon-manager/hackathon/internal/pkg/filestorage"
	"github.com/hackathon-manager/hackathon/internal/pkg/helpers"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
	"github.com/hackathon-manager/hackathon/internal/pkg/metrics"
	"github.com/hackathon-manager/hackathon/internal/pkg/validation"
	"github.com/hackathon-manager/hackathon/internal/pkg/websocket"
	"github.com/hackathon-manager/hackathon/internal/seed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// uploadsPrefix is the public path stored avatars are served under
const uploadsPrefix = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	Bus         *events.Bus
	Hub         *websocket.Hub
	Metrics     *metrics.Metrics
	FileStorage *filestorage.LocalStorage
	Mailer      email.Sender

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers

	Logger zerolog.Logger

	// cancel stops the hub, the notifier and the metrics refresher
	cancel context.CancelFunc
}

// Close stops background workers and the event bus
func (d *Dependencies) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Bus != nil {
		d.Bus.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the SQLite database, applies migrations and seeds the
// administrator account.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(ctx, cfg.Database.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}
	lgr.Info().Msg("Database ready, migrations applied.")

	admin := seed.AdminAccount{
		Email:    cfg.Registration.AdminEmail,
		Password: cfg.Registration.AdminPassword,
	}
	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewUserRepository(database.DB), admin, lgr); err != nil {
		// Startup continues; the admin can be created on the next start.
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, background workers, services
// and controllers. Workers run until Close is called.
func BuildDependencies(cfg *config.Config, database *db.SQLiteDB, lgr zerolog.Logger) (*Dependencies, error) {
	ctx, cancel := context.WithCancel(context.Background())
	deps := &Dependencies{Logger: lgr, cancel: cancel}

	deps.Repos = appRepos.NewRepositories(database.DB)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, uploadsPrefix)
	if err != nil {
		cancel()
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Mailer, err = email.NewSender(email.Config{
		Provider:     cfg.Email.Provider,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromAddress,
		BaseURL:      cfg.Server.BaseURL,
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUser:     cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		SMTPUseTLS:   cfg.Email.SMTPUseTLS,
		ResendAPIKey: cfg.Email.ResendAPIKey,
	}, logger.Component("email"))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize email sender: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, 2*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	// Event bus with its two subscribers
	deps.Bus = events.NewBus(logger.Component("events"))
	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	go deps.Hub.Run(ctx)
	websocket.NewNotifier(deps.Bus, deps.Hub, logger.Component("websocket")).Start(ctx)

	deps.Metrics = metrics.New(deps.Repos.StatsRepository, logger.Component("metrics"))
	deps.Metrics.Start(ctx, deps.Bus)

	svcDeps := appServices.Deps{
		Repos:     deps.Repos,
		Tx:        database,
		Publisher: deps.Bus,
	}

	authService := appServices.NewAuthService(svcDeps, deps.JWTService, deps.Mailer, cfg.Registration.AllowedDomains, lgr)
	userService := appServices.NewUserService(svcDeps, deps.FileStorage, lgr)
	eventService := appServices.NewEventService(svcDeps, lgr)
	projectService := appServices.NewProjectService(svcDeps, lgr)
	participantService := appServices.NewParticipantService(svcDeps, lgr)
	initiatorService := appServices.NewInitiatorService(svcDeps, lgr)
	ownerService := appServices.NewOwnerService(svcDeps, lgr)
	parkingService := appServices.NewParkingService(svcDeps, lgr)
	bookingService := appServices.NewBookingService(svcDeps, lgr)
	healthService := appServices.NewHealthService(database, deps.Hub, cfg)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(authService, lgr),
		User:        appControllers.NewUserController(userService, lgr),
		Event:       appControllers.NewEventController(eventService, projectService, lgr),
		Project:     appControllers.NewProjectController(projectService, lgr),
		Participant: appControllers.NewMembershipController(participantService, lgr),
		Initiator:   appControllers.NewMembershipController(initiatorService, lgr),
		Owner:       appControllers.NewOwnerController(ownerService, lgr),
		Parking:     appControllers.NewParkingController(parkingService, bookingService, lgr),
		Health:      appControllers.NewHealthController(healthService),
		WebSocket:   websocket.NewHandler(deps.Hub, deps.JWTService, cfg.Server.CORSOrigins, logger.Component("websocket")),
		Metrics:     deps.Metrics.Handler(),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	// Uploaded avatars
	router.Static(deps.FileStorage.URLPrefix(), deps.FileStorage.BasePath())

	return router
}
