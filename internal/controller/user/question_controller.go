package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/controller"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetRandomQuestions godoc
// @Summary Draw random questions
// @Description Count defaults to 10 and is clamped to 1..100.
// @Tags Questions
// @Produce json
// @Param count query int false "Number of questions"
// @Param topic query string false "Topic filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/random [get]
func (c *QuestionController) GetRandomQuestions(ctx *gin.Context) {
	var query dto.RandomQuestionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	questions, err := c.questionService.RandomQuestions(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), uint(id))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}
