package middleware

import (
	"errors"
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		// Never expose internal error details to clients
		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Errorw("Request failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		}

		var data interface{}
		if len(appErr.Details) > 0 {
			data = response.ValidationData{Errors: appErr.Details}
		}
		response.Error(c, appErr.Code, appErr.Message, data)
	}
}
