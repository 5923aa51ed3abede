package middleware

import (
	"net/http"
	"runtime/debug"

	"go-medical-frontdesk/pkg/response"

	"github.com/sirupsen/logrus"
)

// Recovery turns a handler panic into a 500 response.
func Recovery(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"stack":  string(debug.Stack()),
					}).Errorf("Recovered from panic: %v", rec)
					response.InternalServerError(w, "")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
