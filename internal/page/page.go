// Package page holds what every page handler does before building its view:
// the health gate with demo fallback and the current user lookup.
package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxBodyBytes = 64 * 1024

type HealthChecker interface {
	Health(ctx context.Context) error
}

type UserGetter interface {
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
}

// UseDemo reports whether page should be served from the demo dataset,
// which is the case when the API health check fails.
func UseDemo(ctx context.Context, checker HealthChecker, metricsManager *metrics.Manager, page string) bool {
	err := checker.Health(ctx)
	if err == nil {
		return false
	}

	log.Warnf("grunga api unhealthy, serving demo %s page: %s", page, err)
	if metricsManager != nil {
		metricsManager.CounterDemoFallbacks.WithLabelValues(page).Inc()
	}
	return true
}

// CurrentUser loads the record of the demo user acting in ctx.
func CurrentUser(ctx context.Context, getter UserGetter) (*grunga.User, error) {
	username := identity.Username(ctx)
	if username == "" {
		return nil, fmt.Errorf("no demo user in context: %w", grunga.ErrNotFound)
	}
	return getter.GetUser(ctx, username)
}

// Fail logs err, marks span as failed and answers with the generic
// user-facing message.
func Fail(w http.ResponseWriter, span trace.Span, status int, message string, err error) {
	log.Errorf("%s: %s", message, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	pkg.WriteJSONError(w, status, message)
}

// UpstreamStatus maps an API client error to our answer status: 404 for
// unknown records, 502 for everything else.
func UpstreamStatus(err error) int {
	if errors.Is(err, grunga.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// DecodeJSON reads a small JSON body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty body")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshal body: %w", err)
	}
	return nil
}

// ParseID parses a positive integer path value.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id: %d", id)
	}
	return id, nil
}

// FlexInt decodes a JSON number or a numeric string, the way a form input
// sends it. Anything else decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			*f = FlexInt(v)
			return nil
		}
	}
	*f = 0
	return nil
}
