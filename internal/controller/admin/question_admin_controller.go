package admin

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/controller"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/importer"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionAdminController struct {
	questionService service.QuestionService
}

func NewQuestionAdminController(questionService service.QuestionService) *QuestionAdminController {
	return &QuestionAdminController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description Creates one multiple-choice question with 4 to 6 options. Correct answers are 0-based option indices.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *QuestionAdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ImportQuestions godoc
// @Summary (Admin) Import questions from a spreadsheet
// @Description Reads the first sheet of an .xlsx file. Columns: question, option1..option6, correct_answers (1-based, e.g. "1,3"), topic, difficulty, explanation.
// @Tags Admin - Questions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Question bank (.xlsx)"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/import [post]
func (c *QuestionAdminController) ImportQuestions(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A file field named 'file' is required"})
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Only .xlsx files are supported"})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Admin ImportQuestions: cannot open upload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	parsed, err := importer.ReadXLSX(file)
	if err != nil {
		log.Warn().Err(err).Str("filename", header.Filename).Msg("Admin ImportQuestions: invalid spreadsheet")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := c.questionService.ImportQuestions(ctx.Request.Context(), parsed)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to import questions")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
