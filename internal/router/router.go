// Package router assembles the gin engine and the API routes.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/config"
	"github.com/lshigami/quizreview/internal/controller"
	adminctrl "github.com/lshigami/quizreview/internal/controller/admin"
	userctrl "github.com/lshigami/quizreview/internal/controller/user"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/lshigami/quizreview/internal/validation"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if err := validation.RegisterWithGin(); err != nil {
		log.Error().Err(err).Msg("Failed to register custom validators")
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", controller.Health)

	return r
}

// RegisterRoutes mounts every API route under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	sessions service.SessionService,
	attemptCtrl *userctrl.AttemptController,
	questionCtrl *userctrl.QuestionController,
	explanationCtrl *userctrl.ExplanationController,
	sessionCtrl *userctrl.SessionController,
	questionAdminCtrl *adminctrl.QuestionAdminController,
) {
	api := router.Group("/api/v1")
	api.Use(controller.SessionMiddleware(sessions))
	{
		api.POST("/sessions", sessionCtrl.CreateSession)

		attempts := api.Group("/attempts")
		attempts.POST("", attemptCtrl.RecordAttempt)
		attempts.GET("/stats", attemptCtrl.GetStats)
		attempts.GET("/incorrect", attemptCtrl.GetIncorrectAttempts)
		attempts.GET("/incorrect/grouped", attemptCtrl.GetIncorrectAttemptsGrouped)
		attempts.DELETE("/incorrect/clear", attemptCtrl.ClearIncorrectAttempts)

		questions := api.Group("/questions")
		questions.GET("/random", questionCtrl.GetRandomQuestions)
		questions.GET("/:id", questionCtrl.GetQuestion)

		api.POST("/explanations", explanationCtrl.GenerateExplanation)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/questions", questionAdminCtrl.CreateQuestion)
		admin.POST("/questions/import", questionAdminCtrl.ImportQuestions)
	}
}
