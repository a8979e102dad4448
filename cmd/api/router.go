package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/shared/middleware"
	"conduit-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupUserRoutes(api, c)
		setupProfileRoutes(api, c)
		setupArticleRoutes(api, c)
		setupTagRoutes(api, c)
	}

	return router
}

func setupUserRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.POST("/users", c.UserHandler.Register)
	rg.POST("/users/login", c.UserHandler.Login)

	authed := rg.Group("/user", middleware.AuthRequired(c.JWTManager))
	{
		authed.GET("", c.UserHandler.CurrentUser)
		authed.PUT("", c.UserHandler.UpdateUser)
	}
}

func setupProfileRoutes(rg *gin.RouterGroup, c *container.Container) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("/:username", middleware.AuthOptional(c.JWTManager), c.ProfileHandler.GetProfile)
		profiles.POST("/:username/follow", middleware.AuthRequired(c.JWTManager), c.ProfileHandler.Follow)
		profiles.DELETE("/:username/follow", middleware.AuthRequired(c.JWTManager), c.ProfileHandler.Unfollow)
	}
}

func setupArticleRoutes(rg *gin.RouterGroup, c *container.Container) {
	required := middleware.AuthRequired(c.JWTManager)
	optional := middleware.AuthOptional(c.JWTManager)

	articles := rg.Group("/articles")
	{
		// The global listing ignores credentials entirely; the feed and
		// single-article reads honor them.
		articles.GET("", c.ArticleHandler.ListArticles)
		articles.GET("/feed", required, c.ArticleHandler.Feed)
		articles.GET("/:slug", optional, c.ArticleHandler.GetArticle)

		articles.POST("", required, c.ArticleHandler.CreateArticle)
		articles.PUT("/:slug", required, c.ArticleHandler.UpdateArticle)
		articles.DELETE("/:slug", required, c.ArticleHandler.DeleteArticle)

		articles.POST("/:slug/favorite", required, c.ArticleHandler.Favorite)
		articles.DELETE("/:slug/favorite", required, c.ArticleHandler.Unfavorite)

		articles.GET("/:slug/comments", optional, c.CommentHandler.ListComments)
		articles.POST("/:slug/comments", required, c.CommentHandler.CreateComment)
		articles.DELETE("/:slug/comments/:id", required, c.CommentHandler.DeleteComment)
	}
}

func setupTagRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.GET("/tags", c.TagHandler.ListTags)
}

// healthCheckHandler reports the API and its backing services. Redis is
// reported but never fails the check since the API works without it.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		status := http.StatusOK
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		ctx.JSON(status, gin.H{
			"status":    dbStatus,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": gin.H{
				"database": dbStatus,
				"redis":    cacheStatus,
			},
		})
	}
}
