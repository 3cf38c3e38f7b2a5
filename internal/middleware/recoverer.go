package middleware

import (
	"net/http"
	"runtime/debug"

	"travel-api/internal/logger"

	"github.com/sirupsen/logrus"
)

// Recoverer turns a panic in a handler into a 500 JSON response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Logger.WithFields(logrus.Fields{
				"panic":      rec,
				"method":     r.Method,
				"url":        r.URL.Path,
				"request_id": RequestIDFromContext(r.Context()),
				"stack":      string(debug.Stack()),
			}).Error("recovered from panic")

			writeJSONError(w, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
