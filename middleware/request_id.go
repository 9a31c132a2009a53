package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cppla/verdantlog/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with a unique id for log correlation,
// honoring an id supplied by an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(utils.ContextRequestIDKey, rid)
		ctx.Header(requestIDHeader, rid)
		ctx.Next()
	}
}
