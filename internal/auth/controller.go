package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eticket/internal/shared/utils/response"
	"eticket/pkg/logger"
)

type Controller interface {
	Login(c *gin.Context)
	GetMe(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.GetDefault().LogAuthFailure(c.Request.Context(), "invalid username or password", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid username or password", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Login failed", nil)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", resp)
}

func (ctrl *controller) GetMe(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	response.Success(c, http.StatusOK, "Authenticated", gin.H{"username": username})
}
