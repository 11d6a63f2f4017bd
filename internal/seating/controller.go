package seating

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eticket/internal/shared/utils/response"
)

type Controller interface {
	GetSeatingLayout(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetSeatingLayout(c *gin.Context) {
	eventID := c.Param("eventId")

	layout, err := ctrl.service.GetLayout(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrLayoutNotFound) {
			response.Error(c, http.StatusNotFound, "Seating layout not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load seating layout", nil)
		return
	}

	response.Success(c, http.StatusOK, "Seating layout retrieved successfully", layout)
}
