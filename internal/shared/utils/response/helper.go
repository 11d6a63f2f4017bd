package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, "success", code, message, data, nil)
}

// Error writes an error envelope
func Error(c *gin.Context, code int, message string, errors interface{}) {
	RespondJSON(c, "error", code, message, nil, errors)
}

// Redirect reports a failed step guard. State is never partially applied
// when a guard fails, so 409 carries the step the client must fall back to.
func Redirect(c *gin.Context, step string) {
	RespondJSON(c, "error", http.StatusConflict, "Booking step prerequisites not met",
		StepRedirect{RedirectStep: step}, nil)
}
