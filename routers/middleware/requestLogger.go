package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the id of a request
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestLogger tags every request with an id and logs its method, path, status and duration.
// An id supplied by the client in the X-Request-ID header is kept.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		reqID := ctx.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx.Set(requestIDKey, reqID)
		ctx.Header(RequestIDHeader, reqID)

		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.RequestURI()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0),
			zap.String("request_id", reqID),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		logger.Info("http", fields...)
	}
}

// RequestID returns the id RequestLogger assigned to the request
func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
