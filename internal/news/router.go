package news

import (
	"github.com/gin-gonic/gin"
)

// SetupNewsRoutes registers the public news endpoints
func SetupNewsRoutes(router *gin.RouterGroup, controller Controller) {
	newsGroup := router.Group("/news")
	{
		newsGroup.GET("", controller.GetAllArticles)        // GET /api/v1/news
		newsGroup.GET("/:articleId", controller.GetArticle) // GET /api/v1/news/:articleId
	}
}
