package routes

import (
	"time"

	"riseup/handlers"
	"riseup/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(h *handlers.Handlers, assetsDir string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if assetsDir != "" {
		router.Static("/assets", assetsDir)
	}

	authLimiter := middleware.NewRateLimiter(60, time.Minute)

	// Public routes (no auth required)
	router.GET("/verify/:token", h.Verify)
	router.GET("/logout/:token", h.Logout)
	router.POST("/login", authLimiter.Middleware(), h.Login)
	router.POST("/signup", authLimiter.Middleware(), h.Signup)
	router.POST("/message", h.ChatMessage)

	// Protected routes group
	protected := router.Group("/")
	protected.Use(middleware.TokenAuth(h.Tokens))

	protected.GET("/user/:uid", h.GetUser)
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts", h.GetPosts)
	protected.GET("/posts/:uid", h.GetUserPosts)
	protected.PATCH("/likes/:id", h.ToggleLike)
	protected.PATCH("/streak/:id", h.TouchStreak)
	protected.GET("/leaderboard", h.Leaderboard)

	return router
}
