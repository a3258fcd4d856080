package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const msgInternalError = "Something went wrong."

// PanicRecovery turns a handler panic into a 500 JSON error, marks the
// request span as failed and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				route := req.URL.Path
				if current := mux.CurrentRoute(req); current != nil && current.GetName() != "" {
					route = current.GetName()
				}
				log.WithFields(log.Fields{
					"route":     route,
					"demo_user": identity.Username(req.Context()),
				}).Errorf("panic serving %s: %v\n%s", req.URL.Path, recovered, debug.Stack())

				span := trace.SpanFromContext(req.Context())
				span.SetStatus(codes.Error, fmt.Sprintf("panic: %v", recovered))

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, http.StatusInternalServerError, msgInternalError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
