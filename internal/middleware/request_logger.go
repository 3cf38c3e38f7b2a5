package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"travel-api/internal/logger"
	"travel-api/internal/models"
	"travel-api/internal/services"

	"github.com/sirupsen/logrus"
)

// requestInfo is filled in by inner handlers and read back once the request
// completes.
type requestInfo struct {
	userID string
}

func setRequestUser(ctx context.Context, userID string) {
	if info, ok := ctx.Value(requestInfoKey).(*requestInfo); ok {
		info.userID = userID
	}
}

type RequestLogger struct {
	logService services.RequestLogService
}

func NewRequestLogger(logService services.RequestLogService) *RequestLogger {
	return &RequestLogger{
		logService: logService,
	}
}

// LogRequest stores one RequestLog per /api call.
func (rl *RequestLogger) LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		info := &requestInfo{}
		ctx := context.WithValue(r.Context(), requestInfoKey, info)
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r.WithContext(ctx))

		entry := &models.RequestLog{
			RequestID:  RequestIDFromContext(r.Context()),
			UserID:     info.userID,
			Endpoint:   r.URL.Path,
			Method:     r.Method,
			StatusCode: rw.statusCode,
			DurationMs: time.Since(start).Milliseconds(),
			IP:         ClientIP(r),
			Timestamp:  start.UTC(),
		}
		// The client may already be gone; the entry is still stored.
		if err := rl.logService.LogRequest(context.WithoutCancel(r.Context()), entry); err != nil {
			logger.Logger.WithFields(logrus.Fields{
				"error": err.Error(),
				"user":  info.userID,
				"path":  r.URL.Path,
			}).Error("Failed to log request")
		}
	})
}
