package container

import (
	"context"
	"fmt"

	"github.com/devmatch/backend/internal/chathub"
	"github.com/devmatch/backend/internal/config"
	"github.com/devmatch/backend/internal/delivery/http"
	"github.com/devmatch/backend/internal/delivery/http/handler"
	"github.com/devmatch/backend/internal/delivery/http/middleware"
	"github.com/devmatch/backend/internal/infrastructure/database"
	"github.com/devmatch/backend/internal/infrastructure/gemini"
	"github.com/devmatch/backend/internal/infrastructure/server"
	"github.com/devmatch/backend/internal/repository/postgres"
	"github.com/devmatch/backend/internal/usecase/auth"
	"github.com/devmatch/backend/internal/usecase/chat"
	"github.com/devmatch/backend/internal/usecase/discover"
	"github.com/devmatch/backend/internal/usecase/match"
	"github.com/devmatch/backend/internal/usecase/swipe"
	"github.com/devmatch/backend/internal/usecase/user"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Hub    *chathub.Hub
	Gemini *gemini.Client

	hubCancel context.CancelFunc
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis (optional; enables cross-instance chat fan-out)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	// Initialize Gemini client (optional; icebreaker generation)
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Warning: failed to initialize Gemini client: %v\n", err)
			geminiClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	userUseCase := user.NewUserUseCase(userRepo)
	swipeUseCase := swipe.NewSwipeUseCase(matchRepo, userRepo, geminiClient)
	discoverUseCase := discover.NewDiscoverUseCase(userRepo, matchRepo)
	matchUseCase := match.NewMatchUseCase(matchRepo, userRepo)
	chatUseCase := chat.NewChatUseCase(matchRepo, messageRepo, userRepo)

	// Initialize chat hub and its pub/sub listener
	hub := chathub.NewHub(redisClient)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	userHandler := handler.NewUserHandler(userUseCase)
	developerHandler := handler.NewDeveloperHandler(swipeUseCase, discoverUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWSHandler(hub, authUseCase, chatUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		developerHandler,
		matchHandler,
		chatHandler,
		wsHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Server:    srv,
		Hub:       hub,
		Gemini:    geminiClient,
		hubCancel: hubCancel,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.hubCancel != nil {
		c.hubCancel()
	}

	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
