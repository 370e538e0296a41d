package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/controller"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/service"
)

type ExplanationController struct {
	explanationService service.ExplanationService
}

func NewExplanationController(explanationService service.ExplanationService) *ExplanationController {
	return &ExplanationController{explanationService: explanationService}
}

// GenerateExplanation godoc
// @Summary Generate and cache an AI explanation
// @Description Produces an explanation and keywords for a question and stores them on it. Without a usable API key a placeholder is returned and nothing is stored.
// @Tags Explanations
// @Accept json
// @Produce json
// @Param request body dto.ExplanationRequest true "Question to explain"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate explanation"
// @Router /explanations [post]
func (c *ExplanationController) GenerateExplanation(ctx *gin.Context) {
	var req dto.ExplanationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.explanationService.GenerateAndCache(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to generate explanation")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
