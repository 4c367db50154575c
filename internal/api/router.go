package api

import (
	"net/http"
	"time"

	"github.com/content-sharing-api/internal/config"
	"github.com/content-sharing-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ViewerIDHeader carries the verified viewer identity installed by the
// upstream authentication layer. The core never verifies credentials.
const ViewerIDHeader = "X-Viewer-ID"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	interactionHandler := NewInteractionHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	userHandler := NewUserHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services, log))

	// API v1
	v1 := router.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.GET("/:user_id", userHandler.Get)
		}

		articles := v1.Group("/articles")
		{
			articles.POST("", requireViewer(), articleHandler.Create)
			articles.GET("", requireViewer(), articleHandler.Feed)
			articles.GET("/search", requireViewer(), articleHandler.Search)
			articles.GET("/user/:user_id", articleHandler.ListByAuthor)
			articles.GET("/:article_id", articleHandler.Get)
			articles.PUT("/:article_id", requireViewer(), articleHandler.Update)
			articles.DELETE("/:article_id", requireViewer(), articleHandler.Delete)
			articles.GET("/:article_id/comments", commentHandler.ListForArticle)

			articles.POST("/likes", requireViewer(), interactionHandler.AddLike)
			articles.DELETE("/likes", requireViewer(), interactionHandler.RemoveLike)
		}

		bookmarks := v1.Group("/bookmarks", requireViewer())
		{
			bookmarks.POST("", interactionHandler.AddBookmark)
			bookmarks.GET("", interactionHandler.ListBookmarked)
			bookmarks.DELETE("", interactionHandler.RemoveBookmark)
		}

		comments := v1.Group("/comments", requireViewer())
		{
			comments.POST("", commentHandler.Add)
			comments.PUT("/:comment_id", commentHandler.Edit)
			comments.DELETE("/:comment_id", commentHandler.Delete)
		}
	}

	return router
}

// viewerID returns the verified viewer identity, empty when anonymous
func viewerID(c *gin.Context) string {
	return c.GetHeader(ViewerIDHeader)
}

// requireViewer rejects requests that arrive without a verified viewer
// identity. Authentication itself happens upstream.
func requireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewerID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Status:  statusFail,
				Message: "viewer identity is required",
			})
			return
		}
		c.Next()
	}
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "content-sharing-api",
	})
}

// metricsHandler returns entity counts
func metricsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Stats.Counts(c.Request.Context())
		if err != nil {
			respondAppError(c, log, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, envelope{
					Status:  statusError,
					Message: "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+ViewerIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
