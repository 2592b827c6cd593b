package v1

import (
	"net/http"
	"time"

	"go-career-mentor-backend/config"
	"go-career-mentor-backend/internal/delivery/http/middleware"
	"go-career-mentor-backend/internal/delivery/http/response"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	PrefsUC     domain.PreferencesUsecase
	JobUC       domain.JobUsecase
	MatchUC     domain.MatchUsecase
	ChatUC      domain.ChatUsecase
	ResumeUC    domain.ResumeUsecase
	AssistantUC domain.AssistantUsecase
	AlertUC     domain.AlertUsecase
	Tokens      *auth.TokenService
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	limitWindow := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, limitWindow)))
	r.Use(middleware.ErrorHandler())

	validate := validator.New()

	authLimit := middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, limitWindow))
	aiLimit := middleware.RateLimitMiddleware(middleware.AIRateLimitConfig(deps.Config.RateLimitAIThreshold, limitWindow))
	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(limitWindow))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, authLimit)
		NewProfileHandler(protected, deps.ProfileUC, deps.PrefsUC, validate)
		NewJobHandler(protected, deps.JobUC, deps.MatchUC)
		NewChatHandler(protected, deps.ChatUC, aiLimit)
		NewResumeHandler(protected, deps.ResumeUC, deps.AssistantUC, uploadLimit, aiLimit)
		NewAlertHandler(protected, deps.AlertUC, validate)
	}

	return r
}
