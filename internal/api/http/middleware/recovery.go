package middleware

import (
	"net/http"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic escaping a handler into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.New(c.Request.Context()).LogErrorf("unhandled", "panic=%v", recovered)
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
	})
}
