package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// AdminKey guards administrative routes with a shared key. An empty
// expected key disables the check.
func AdminKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.Fail(c, http.StatusUnauthorized, "Invalid API key")
			return
		}

		c.Next()
	}
}
