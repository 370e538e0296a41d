package main

import (
	"os"

	_ "github.com/lshigami/quizreview/docs" // Swagger docs
	"github.com/lshigami/quizreview/internal/logger"
)

// @title Quiz Review API
// @version 1.0
// @description Multiple-choice practice API: random questions, attempt history, still-incorrect review and AI explanations.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
