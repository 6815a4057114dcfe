package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(verifier *auth.Verifier, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			// 2. Try to get token from Cookie
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Log.Debugw("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// The role comes from the users table, never from the token
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
				response.Error(c, http.StatusUnauthorized, "User not found", nil)
				c.Abort()
				return
			}
			// Lookup failures are server errors, rendered and logged by ErrorHandler
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if !allowed[c.GetString(string(domain.KeyUserRole))] {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
