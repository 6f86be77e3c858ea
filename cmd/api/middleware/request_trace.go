package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abaneee/social-pulse/cmd/api/trace"
	"github.com/Abaneee/social-pulse/internal/logger"
)

const headerRequestID = "X-Request-Id"

// RequestTrace ensures every inbound request carries a request ID,
// stores it in the context and response headers, and logs one line
// per completed request.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		req = c.Request

		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		// query_params keeps multi-value queries as map[string][]string.
		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}
		var bodySnippet string
		if req.Body != nil && req.ContentLength != 0 &&
			(req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch || req.Method == http.MethodDelete) {
			if isTextualBody(req.Header.Get("Content-Type")) {
				if bodyBytes, err := io.ReadAll(req.Body); err == nil {
					if len(bodyBytes) > 0 {
						const maxBodyLog = 1024
						if len(bodyBytes) > maxBodyLog {
							bodySnippet = string(bodyBytes[:maxBodyLog])
						} else {
							bodySnippet = string(bodyBytes)
						}
					}
					// Restore Body so gin handlers can read it again.
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)
		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"query_params": queryParams,
			"status":       status,
			"duration":     duration.String(),
			"request_id":   requestID,
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// isTextualBody reports whether the body is worth echoing into logs.
// CSV uploads arrive as multipart form data and are skipped.
func isTextualBody(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "text/plain")
}
