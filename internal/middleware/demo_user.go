package middleware

import (
	"net/http"

	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=demo_user_mocks_test.go -package=middleware_test

type demoUserResolver interface {
	Resolve(r *http.Request) string
}

// DemoUserMiddlewareHandler stores the acting demo user in the request
// context. It replaces authentication: the demo identity is all we have.
type DemoUserMiddlewareHandler struct {
	resolver       demoUserResolver
	anonymousPaths map[string]bool
}

func NewDemoUserMiddlewareHandler(resolver demoUserResolver) *DemoUserMiddlewareHandler {
	return &DemoUserMiddlewareHandler{
		resolver: resolver,
		anonymousPaths: map[string]bool{
			"/":       true,
			"/health": true,
		},
	}
}

func (h *DemoUserMiddlewareHandler) DemoUser() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || h.anonymousPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.demoUser")
			username := h.resolver.Resolve(r.WithContext(ctx))
			span.SetAttributes(attribute.String("demo.user", username))
			span.End()

			next.ServeHTTP(w, r.WithContext(identity.WithUsername(r.Context(), username)))
		})
	}
}
