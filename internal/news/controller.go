package news

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eticket/internal/shared/utils/response"
)

type Controller interface {
	GetAllArticles(c *gin.Context)
	GetArticle(c *gin.Context)
}

type controller struct {
	repo Repository
}

// NewController wires the controller straight to the repository; news has no
// business rules that would warrant a service layer.
func NewController(repo Repository) Controller {
	return &controller{repo: repo}
}

func (ctrl *controller) GetAllArticles(c *gin.Context) {
	articles, err := ctrl.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load news", nil)
		return
	}

	response.Success(c, http.StatusOK, "News retrieved successfully", articles)
}

func (ctrl *controller) GetArticle(c *gin.Context) {
	article, err := ctrl.repo.GetByID(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "News article not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load news article", nil)
		return
	}

	response.Success(c, http.StatusOK, "News article retrieved successfully", article)
}
