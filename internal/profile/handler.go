package profile

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

const MsgLoadError = "Could not load profile."

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	GetPoints(ctx context.Context, userID int) (*grunga.Points, error)
	ListWorkouts(ctx context.Context, userID int) ([]grunga.Workout, error)
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
	router.HandleFunc("/profile/{user}", handler.HandleGet).Methods("GET").Name("profile")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profileHandler.get")
	defer span.End()

	who := strings.TrimSpace(mux.Vars(r)["user"])
	span.SetAttributes(attribute.String("profile.user", who))

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "profile") {
		view, ok := demoView(who)
		if !ok {
			pkg.WriteJSONError(w, http.StatusNotFound, MsgInvalidFriend)
			return
		}
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	user, err := handler.api.GetUser(ctx, who)
	if err != nil {
		if errors.Is(err, grunga.ErrNotFound) {
			page.Fail(w, span, http.StatusNotFound, MsgInvalidFriend, err)
			return
		}
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	points, err := handler.api.GetPoints(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}
	workouts, err := handler.api.ListWorkouts(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}
	list, err := handler.api.ListUserBadges(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, BuildView(*user, points, workouts, list))
}

// demoView finds who among the demo users by username or id. Only the
// main demo user has stats.
func demoView(who string) (View, bool) {
	d := demo.Default()
	for id, u := range d.UsersByID() {
		if !strings.EqualFold(u.Username, who) && strconv.Itoa(id) != who {
			continue
		}
		var view View
		if id == d.User.UserID {
			view = BuildView(u, &d.Points, d.Workouts, d.Badges)
		} else {
			view = BuildView(u, nil, nil, nil)
		}
		view.Demo = true
		return view, true
	}
	return View{}, false
}
