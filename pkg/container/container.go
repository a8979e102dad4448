package container

import (
	"context"
	"fmt"
	"time"

	"conduit-backend/internal/config"
	infraCache "conduit-backend/internal/infrastructure/cache"
	"conduit-backend/internal/infrastructure/database"
	"conduit-backend/pkg/cache"
	"conduit-backend/pkg/jwt"
	"conduit-backend/pkg/logger"

	"conduit-backend/internal/domains/article"
	articleHandler "conduit-backend/internal/domains/article/handler"
	articleRepo "conduit-backend/internal/domains/article/repository"
	articleService "conduit-backend/internal/domains/article/service"
	"conduit-backend/internal/domains/comment"
	commentHandler "conduit-backend/internal/domains/comment/handler"
	commentRepo "conduit-backend/internal/domains/comment/repository"
	commentService "conduit-backend/internal/domains/comment/service"
	"conduit-backend/internal/domains/profile"
	profileHandler "conduit-backend/internal/domains/profile/handler"
	profileService "conduit-backend/internal/domains/profile/service"
	"conduit-backend/internal/domains/tag"
	tagHandler "conduit-backend/internal/domains/tag/handler"
	tagRepo "conduit-backend/internal/domains/tag/repository"
	tagService "conduit-backend/internal/domains/tag/service"
	"conduit-backend/internal/domains/user"
	userHandler "conduit-backend/internal/domains/user/handler"
	userRepo "conduit-backend/internal/domains/user/repository"
	userService "conduit-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	// Infrastructure - shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories - domain data access
	UserRepo    user.Repository
	ArticleRepo article.Repository
	CommentRepo comment.Repository
	TagRepo     tag.Repository

	// Services - domain business logic
	UserService    user.Service
	ProfileService profile.Service
	ArticleService article.Service
	CommentService comment.Service
	TagService     tag.Service

	// Handlers - thin HTTP layer delegating to services
	UserHandler    *userHandler.UserHandler
	ProfileHandler *profileHandler.ProfileHandler
	ArticleHandler *articleHandler.ArticleHandler
	CommentHandler *commentHandler.CommentHandler
	TagHandler     *tagHandler.TagHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

func NewContainer() (*Container, error) {
	c := &Container{}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}
	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	// The cache is an optimization; a dead Redis must not keep the API
	// from starting.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Error("redis unavailable, continuing without cache", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(c.DB)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB)
	c.TagRepo = tagRepo.NewPostgresRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ProfileService = profileService.NewProfileService(c.UserRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.TagRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ArticleRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources in reverse start order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if closer, ok := c.Cache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Error("close redis", err)
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
