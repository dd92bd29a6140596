package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/config"
	"github.com/horsesharing/backend/internal/delivery/http"
	"github.com/horsesharing/backend/internal/delivery/http/handler"
	"github.com/horsesharing/backend/internal/delivery/http/middleware"
	"github.com/horsesharing/backend/internal/infrastructure/database"
	"github.com/horsesharing/backend/internal/infrastructure/kinde"
	"github.com/horsesharing/backend/internal/infrastructure/server"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/horsesharing/backend/internal/repository/postgres"
	"github.com/horsesharing/backend/internal/repository/rediscache"
	"github.com/horsesharing/backend/internal/usecase/auth"
	"github.com/horsesharing/backend/internal/usecase/horse"
	"github.com/horsesharing/backend/internal/usecase/match"
	"github.com/horsesharing/backend/internal/usecase/media"
	"github.com/horsesharing/backend/internal/usecase/owner"
	"github.com/horsesharing/backend/internal/usecase/rider"
	"github.com/horsesharing/backend/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional; without it identity lookups just hit the
	// provider on every request.
	var redisClient *redis.Client
	var identityCache repository.IdentityCache
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, identity caching disabled")
		} else {
			identityCache = rediscache.NewIdentityCache(redisClient)
		}
	}

	// Identity provider clients
	kindeClient := kinde.NewClient(&cfg.Kinde, log)
	managementClient := kinde.NewManagementClient(&cfg.Kinde, log)
	if managementClient == nil {
		log.Info("kinde management credentials absent, contact sync disabled")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	riderRepo := postgres.NewRiderRepository(db)
	ownerRepo := postgres.NewOwnerRepository(db)
	horseRepo := postgres.NewHorseRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		riderRepo,
		ownerRepo,
		kindeClient,
		managementClient,
		identityCache,
		log,
	)

	riderUseCase := rider.NewRiderUseCase(riderRepo, authUseCase, log)
	ownerUseCase := owner.NewOwnerUseCase(ownerRepo, authUseCase, log)
	horseUseCase := horse.NewHorseUseCase(horseRepo, ownerRepo, log)
	matchUseCase := match.NewMatchUseCase(matchRepo, riderRepo, ownerRepo, horseRepo, log)
	mediaUseCase := media.NewMediaUseCase(cfg.Storage, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	riderHandler := handler.NewRiderHandler(riderUseCase)
	ownerHandler := handler.NewOwnerHandler(ownerUseCase)
	horseHandler := handler.NewHorseHandler(horseUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	mediaHandler := handler.NewMediaHandler(mediaUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		cfg.Storage,
		authHandler,
		riderHandler,
		ownerHandler,
		horseHandler,
		matchHandler,
		mediaHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.WithError(err).Error("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
