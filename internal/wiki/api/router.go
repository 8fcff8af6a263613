package api

import (
	"Boettcher_Wiki/internal/config"
	"Boettcher_Wiki/internal/wiki/auth"
	"Boettcher_Wiki/pkg/ratelimiter"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the gin engine with all wiki routes.
//
// CORS is wide open on purpose: the wiki is a public internal API consumed
// by browsers on arbitrary origins. Revisit before exposing it beyond the
// company network.
func SetupRouter(h *Handler, a *auth.Authenticator, mwCfg *config.MiddlewareConfig) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	if mwCfg != nil && mwCfg.RateLimiter.Enabled {
		limiter := ratelimiter.NewTokenBucket(mwCfg.RateLimiter.Rate, mwCfg.RateLimiter.Capacity)
		r.Use(RateLimitMiddleware(limiter))
	}

	authMiddleware := AuthMiddleware(a)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		// Question & answer routes, open to all wiki users.
		api.POST("/questions", h.CreateQuestion)
		api.GET("/questions", h.ListQuestions)
		api.POST("/questions/:id/answer", h.CreateAnswer)
		api.DELETE("/questions/:id", h.DeleteQuestion)
		api.POST("/search", h.SearchQuestions)
		api.GET("/categories", h.ListCategories)
		api.GET("/stats", h.Stats)

		// Admin authentication.
		admin := api.Group("/admin")
		{
			admin.POST("/login", h.Login)
			admin.GET("/verify", authMiddleware, h.VerifyToken)
		}

		// Knowledge base: reading and searching are public, mutations are
		// admin only.
		knowledge := api.Group("/knowledge")
		{
			knowledge.GET("", h.ListEntries)
			knowledge.POST("/search", h.SearchEntries)
			knowledge.POST("", authMiddleware, h.CreateEntry)
			knowledge.PUT("/:id", authMiddleware, h.UpdateEntry)
			knowledge.DELETE("/:id", authMiddleware, h.DeleteEntry)
		}
	}

	return r
}
