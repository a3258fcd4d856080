package home

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=home_test

const MsgLoadError = "Could not load your summary."

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	GetPoints(ctx context.Context, userID int) (*grunga.Points, error)
}

type Handler struct {
	api            upstream
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(api upstream, metricsManager *metrics.Manager, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		api:            api,
		metricsManager: metricsManager,
		now:            now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/home", handler.HandleGet).Methods("GET").Name("home")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "homeHandler.get")
	defer span.End()

	now := handler.now()
	if page.UseDemo(ctx, handler.api, handler.metricsManager, "home") {
		d := demo.Default()
		view := BuildView(d.User, d.Points, now)
		view.Demo = true
		view.Boss.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgLoadError, err)
		return
	}
	span.SetAttributes(attribute.Int("user.id", user.UserID))

	points, err := handler.api.GetPoints(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, BuildView(*user, *points, now))
}
