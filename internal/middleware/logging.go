package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/grunga/internal/identity"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request once it is served. It sits outside the
// demo user middleware, so it logs the raw identity header.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !log.IsLevelEnabled(log.TraceLevel) {
				next.ServeHTTP(w, r)
				return
			}

			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			begin := time.Now()
			next.ServeHTTP(resp, r)

			log.WithFields(log.Fields{
				"method":      r.Method,
				"route":       routeName(r),
				"status":      resp.statusCode,
				"duration_ms": time.Since(begin).Milliseconds(),
				"demo_header": r.Header.Get(identity.HeaderName),
			}).Tracef("served %s", r.URL.Path)
		})
	}
}
