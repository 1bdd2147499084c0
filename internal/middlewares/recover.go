package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/course-platform/internal/logger"
)

// RecoverMiddleware turns a panic into a 500 JSON response carrying the panic message.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.Errorw("panic recovered",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"uri", r.RequestURI,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
		}()

		next.ServeHTTP(w, r)
	})
}
