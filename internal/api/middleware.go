package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rshade/footprint/internal/logging"
)

// RequestLogger attaches a trace ID and a request-scoped logger to each
// request and logs its outcome. A trace ID supplied in the X-Trace-ID header
// is reused; otherwise one is generated and echoed back.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(logging.TraceIDHeader)
		if traceID == "" {
			traceID = logging.GenerateTraceID()
		}
		c.Header(logging.TraceIDHeader, traceID)

		reqLogger := base.With().Str("trace_id", traceID).Logger()
		ctx := logging.ContextWithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(reqLogger.WithContext(ctx))

		c.Next()

		status := c.Writer.Status()
		event := reqLogger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = reqLogger.Error()
		case status >= http.StatusBadRequest:
			event = reqLogger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}

// Recovery turns panics into a 500 INTERNAL_ERROR response and logs them.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")

		writeJSON(c, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    CodeInternal,
				Message: "An unexpected error occurred",
			},
		})
		c.Abort()
	})
}
