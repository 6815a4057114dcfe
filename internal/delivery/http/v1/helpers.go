package v1

import (
	"strconv"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// callerFrom reads the identity set by AuthMiddleware
func callerFrom(c *gin.Context) domain.Caller {
	return domain.Caller{
		UserID: c.GetString(string(domain.KeyUserID)),
		Role:   c.GetString(string(domain.KeyUserRole)),
	}
}

func paramID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation([]string{"Resume ID: must be a positive integer"})
	}
	return id, nil
}
