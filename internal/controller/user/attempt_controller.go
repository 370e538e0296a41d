package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/controller"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// userFromQuery resolves the acting user from the session and the userId
// query parameter, writing the error response itself on failure.
func userFromQuery(ctx *gin.Context) (string, bool) {
	var query dto.UserQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, err)
		return "", false
	}
	userID, err := controller.ResolveUserID(ctx, query.UserID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to resolve user")
		return "", false
	}
	return userID, true
}

// RecordAttempt godoc
// @Summary Record an answer submission
// @Description Appends one immutable attempt. The session user wins over the userId field.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt body dto.RecordAttemptRequest true "Submitted answer"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Missing user or invalid answer"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Attempt not saved"
// @Router /attempts [post]
func (c *AttemptController) RecordAttempt(ctx *gin.Context) {
	var req dto.RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	userID, err := controller.ResolveUserID(ctx, req.UserID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to resolve user")
		return
	}

	resp, err := c.attemptService.RecordAttempt(ctx.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to save attempt")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetIncorrectAttempts godoc
// @Summary List still-incorrect questions
// @Description For every question the user answered, the latest attempt is returned when it was wrong.
// @Tags Attempts
// @Produce json
// @Param userId query string false "User ID (required without a session)"
// @Success 200 {array} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "User ID is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/incorrect [get]
func (c *AttemptController) GetIncorrectAttempts(ctx *gin.Context) {
	userID, ok := userFromQuery(ctx)
	if !ok {
		return
	}
	attempts, err := c.attemptService.IncorrectAttempts(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch incorrect attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetIncorrectAttemptsGrouped godoc
// @Summary List still-incorrect questions grouped by date
// @Tags Attempts
// @Produce json
// @Param userId query string false "User ID (required without a session)"
// @Success 200 {array} dto.IncorrectGroupResponse
// @Failure 400 {object} dto.ErrorResponse "User ID is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/incorrect/grouped [get]
func (c *AttemptController) GetIncorrectAttemptsGrouped(ctx *gin.Context) {
	userID, ok := userFromQuery(ctx)
	if !ok {
		return
	}
	groups, err := c.attemptService.IncorrectAttemptsByDate(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch incorrect attempts")
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// ClearIncorrectAttempts godoc
// @Summary Clear attempt history
// @Description Deletes every attempt of the user.
// @Tags Attempts
// @Produce json
// @Param userId query string false "User ID (required without a session)"
// @Success 200 {object} dto.ClearResponse
// @Failure 400 {object} dto.ErrorResponse "User ID is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/incorrect/clear [delete]
func (c *AttemptController) ClearIncorrectAttempts(ctx *gin.Context) {
	userID, ok := userFromQuery(ctx)
	if !ok {
		return
	}
	deleted, err := c.attemptService.ClearAttempts(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to clear attempts")
		return
	}
	ctx.JSON(http.StatusOK, dto.ClearResponse{DeletedCount: deleted})
}

// GetStats godoc
// @Summary Practice statistics
// @Tags Attempts
// @Produce json
// @Param userId query string false "User ID (required without a session)"
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} dto.ErrorResponse "User ID is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/stats [get]
func (c *AttemptController) GetStats(ctx *gin.Context) {
	userID, ok := userFromQuery(ctx)
	if !ok {
		return
	}
	stats, err := c.attemptService.Stats(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to compute statistics")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
