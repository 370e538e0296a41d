package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestRespondErrorLogsSessionFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("%w: token expired", service.ErrUnauthorized), http.StatusUnauthorized, "Unauthorized request"},
		{service.ErrForbidden, http.StatusForbidden, "Forbidden request"},
	}
	for _, tc := range cases {
		buf := captureLog(t)
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		RespondError(ctx, tc.err, "Internal server error")

		assert.Equal(t, tc.status, w.Code)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, tc.message, entry["message"])
		assert.Equal(t, tc.err.Error(), entry["error"])
	}
}
