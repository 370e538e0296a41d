// Package controller holds the helpers shared by the user and admin HTTP
// handlers: error mapping, request identity and health checks.
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/lshigami/quizreview/internal/validation"
	"github.com/rs/zerolog/log"
)

// SessionUserKey is the gin context key holding the user id of a verified
// bearer token.
const SessionUserKey = "session_user_id"

// StatusFor maps service error kinds onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case service.IsNotFound(err):
		return http.StatusNotFound
	case service.IsUnauthorized(err):
		return http.StatusUnauthorized
	case service.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError logs err and writes a generic body. Validation messages are
// client facing; everything else is replaced by fallback.
func RespondError(ctx *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	message := fallback
	switch status {
	case http.StatusBadRequest:
		message = err.Error()
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected request")
	case http.StatusNotFound:
		message = "Resource not found"
		log.Info().Err(err).Str("path", ctx.FullPath()).Msg("Resource not found")
	case http.StatusUnauthorized:
		message = "Invalid or expired session"
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Unauthorized request")
	case http.StatusForbidden:
		message = "Session does not match the requested user"
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Forbidden request")
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
	}
	ctx.JSON(status, dto.ErrorResponse{Error: message})
}

// RespondBindError answers a failed ShouldBind call with a 400.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Describe(err, "Invalid request body")})
}

// SessionMiddleware verifies an optional bearer token. Requests without an
// Authorization header pass through untouched.
func SessionMiddleware(sessions service.SessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warn().Str("path", ctx.FullPath()).Msg("Malformed Authorization header")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
			return
		}
		userID, err := sessions.Verify(parts[1])
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Session token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired session"})
			return
		}
		ctx.Set(SessionUserKey, userID)
		ctx.Next()
	}
}

// ResolveUserID picks the acting user. A session always wins; an explicit id
// that disagrees with it is forbidden. Without a session the explicit id is
// used as is and may be empty.
func ResolveUserID(ctx *gin.Context, explicit string) (string, error) {
	explicit = strings.TrimSpace(explicit)
	sessionUser := ctx.GetString(SessionUserKey)
	if sessionUser == "" {
		return explicit, nil
	}
	if explicit != "" && explicit != sessionUser {
		return "", service.ErrForbidden
	}
	return sessionUser, nil
}

// Health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
