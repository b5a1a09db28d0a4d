package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vetcareer-backend/config"
	"vetcareer-backend/internal/delivery/http/middleware"
	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/usecase"
	"vetcareer-backend/pkg/token"
	"vetcareer-backend/pkg/validation"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	MentorUC      domain.MentorUsecase
	ResourceUC    domain.ResourceUsecase
	SkillUC       domain.SkillUsecase
	ResumeUC      domain.ResumeUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	SessionRepo   domain.SessionRepository
	Signer        *token.Signer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes; the credential endpoints carry their own stricter
	// rate limit.
	credentials := v1.Group("")
	credentials.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))
	NewAuthHandler(credentials, deps.AuthUC, deps.Signer, deps.Config)

	NewJobHandler(v1, deps.JobUC)
	NewMentorHandler(v1, deps.MentorUC)
	NewResourceHandler(v1, deps.ResourceUC)
	NewSkillHandler(v1, deps.SkillUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Signer, deps.SessionRepo))
	{
		NewResumeHandler(protected, deps.ResumeUC, deps.AuthUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
