package boss

import (
	"context"
	"net/http"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=boss_test

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	GetPoints(ctx context.Context, userID int) (*grunga.Points, error)
}

type Handler struct {
	api            upstream
	metricsManager *metrics.Manager
}

func NewHandler(api upstream, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		api:            api,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/boss", handler.HandleGet).Methods("GET").Name("boss")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "bossHandler.get")
	defer span.End()

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "boss") {
		view := BuildView(demo.Default().Points.Boss)
		view.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgLoadError, err)
		return
	}

	points, err := handler.api.GetPoints(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	view := BuildView(points.Boss)
	span.SetAttributes(attribute.Int("boss.hp_percent", view.HPPercent))
	pkg.WriteJSON(w, http.StatusOK, view)
}
