// Package bootstrap assembles the application: configuration, logger,
// repositories, services, controllers and the HTTP router.
package bootstrap

import (
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/alumniconnect/backend/internal/app/controllers"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	appRepos "github.com/alumniconnect/backend/internal/app/repositories"
	appRoutes "github.com/alumniconnect/backend/internal/app/routes"
	appServices "github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/config"
	"github.com/alumniconnect/backend/internal/metrics"
	appMiddleware "github.com/alumniconnect/backend/internal/middleware"
	pkgAuth "github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthService        *appServices.AuthService
	AlumniService      *appServices.AlumniService
	EventService       *appServices.EventService
	JobService         *appServices.JobService
	DonationService    *appServices.DonationService
	PostService        *appServices.PostService
	MessageService     *appServices.MessageService
	HomeController     *appControllers.HomeController
	AuthController     *appControllers.AuthController
	AlumniController   *appControllers.AlumniController
	EventController    *appControllers.EventController
	JobController      *appControllers.JobController
	DonationController *appControllers.DonationController
	PostController     *appControllers.PostController
	MessageController  *appControllers.MessageController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Logger             zerolog.Logger
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

// BuildDependencies initializes repositories, services and controllers.
// All state is in memory; collections start empty on every boot.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, err
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService, lgr)
	deps.AlumniService = appServices.NewAlumniService(deps.Repos.Alumni)
	deps.EventService = appServices.NewEventService(deps.Repos.Events)
	deps.JobService = appServices.NewJobService(deps.Repos.Jobs)
	deps.DonationService = appServices.NewDonationService(deps.Repos.Donations)
	deps.PostService = appServices.NewPostService(deps.Repos.Posts)
	deps.MessageService = appServices.NewMessageService(deps.Repos.Messages)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)

	deps.HomeController = appControllers.NewHomeController(deps.Repos)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AlumniController = appControllers.NewAlumniController(deps.AlumniService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.DonationController = appControllers.NewDonationController(deps.DonationService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)

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

	registerValidatorTagNames()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}))
	router.Use(metrics.HTTPMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Unknown paths and known paths with the wrong verb get distinct answers
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method not allowed"))
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	appRoutes.SetupRouter(router,
		deps.HomeController,
		deps.AuthController,
		deps.AlumniController,
		deps.EventController,
		deps.JobController,
		deps.DonationController,
		deps.PostController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	return router
}

// registerValidatorTagNames makes validation errors report json field names
// instead of Go struct field names.
func registerValidatorTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
