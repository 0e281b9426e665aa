package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// IDData is the data payload returned by create endpoints.
type IDData struct {
	ID int64 `json:"id"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes an error envelope and aborts the handler chain.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

const (
	MsgNotFound = "Endpoint not found"
	MsgInternal = "Internal server error"
)

// NotFound is the fallback for unmatched routes.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, MsgNotFound)
}
