package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eticket/internal/shared/utils/response"
)

type Controller interface {
	GetAllEvents(c *gin.Context)
	GetEvent(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	events, err := ctrl.service.ListEvents(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load events", nil)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", events)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID := c.Param("eventId")

	event, err := ctrl.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load event", nil)
		return
	}

	response.Success(c, http.StatusOK, "Event retrieved successfully", event)
}
