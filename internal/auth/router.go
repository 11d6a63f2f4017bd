package auth

import (
	"eticket/internal/shared/config"
	"eticket/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles auth-related routes
type Router struct {
	controller Controller
	config     *config.Config
}

// NewRouter creates a new auth router
func NewRouter(controller Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", authRouter.controller.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.JWTAuth(authRouter.config))
		{
			protected.GET("/me", authRouter.controller.GetMe)
		}
	}
}
