package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ResumeUC       domain.ResumeUsecase
	RecruiterUC    domain.RecruiterUsecase
	HealthUC       usecase.HealthUsecase
	Verifier       *auth.Verifier
	RateLimiter    *middleware.RateLimiter // optional
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins)) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Errorw("Panic recovered",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		c.Abort()
	}))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		result, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", result)
			return
		}
		response.Success(c, http.StatusOK, "System operational", result)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.AuthUC))
	{
		NewResumeHandler(protected, deps.ResumeUC)
		NewRecruiterHandler(protected, deps.RecruiterUC)
	}

	return r
}
