package apis

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDContextKey = "request_id"
)

// RequestID keeps the caller's X-Request-ID or assigns a new UUID, and echoes it back.
func RequestID() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

func RequestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDContextKey)
}

// RequestLogger writes one log line per request once it has been handled.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		status := ctx.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		logger.Log(ctx.Request.Context(), level, "request handled",
			"method", ctx.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", ctx.ClientIP(),
			"request_id", RequestIDFrom(ctx),
		)
	}
}

// NewEngine builds a gin engine with recovery, request IDs and slog access logs.
func NewEngine(logger *slog.Logger) *gin.Engine {

	g := gin.New()
	g.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	return g
}
