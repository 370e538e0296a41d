package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/controller"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary Start a session
// @Description Issues a bearer token carrying the user ID. Send it as "Authorization: Bearer <token>". No credentials are checked, so the token identifies the user but does not authenticate them.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.SessionRequest true "User to sign in"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "User ID is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	session, err := c.sessionService.Issue(req.UserID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}
