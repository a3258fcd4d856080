package badges

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=badges_test

const MsgLoadError = "Could not load badges."

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	ListUserBadges(ctx context.Context, userID int) ([]grunga.Badge, error)
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
	router.HandleFunc("/badges", handler.HandleList).Methods("GET").Name("badges")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "badgesHandler.list")
	defer span.End()

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "badges") {
		view := BuildView(demo.Default().Badges)
		view.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgLoadError, err)
		return
	}

	list, err := handler.api.ListUserBadges(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	span.SetAttributes(attribute.Int("badges.count", len(list)))
	pkg.WriteJSON(w, http.StatusOK, BuildView(list))
}
