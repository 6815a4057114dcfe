package response

import (
	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Status mirrors the HTTP status code.
type Response struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// ValidationData is the data payload of a validation failure
type ValidationData struct {
	Errors []string `json:"errors"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:    code,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:    code,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
