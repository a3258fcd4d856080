package challenges

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=challenges_test

const (
	MsgLoadError       = "Could not load challenges."
	MsgPickRecipient   = "Please pick who you want to challenge."
	MsgPositiveTarget  = "Please enter a positive target."
	MsgSent            = "Challenge sent!"
	MsgSendFailed      = "Failed to send challenge."
	MsgUpdateFailed    = "Could not update challenge."
	MsgInvalidAction   = "Unknown challenge action."
	MsgInvalidRequest  = "Invalid request."
	defaultKind        = "WORKOUT"
	challengeBoxesSize = 3
)

var boxes = [challengeBoxesSize]grunga.ChallengeBox{grunga.BoxIncoming, grunga.BoxActive, grunga.BoxCompleted}

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	ListChallenges(ctx context.Context, box grunga.ChallengeBox) ([]grunga.Challenge, error)
	SendChallenge(ctx context.Context, challenge grunga.NewChallenge) (*grunga.MutationResult, error)
	AcceptChallenge(ctx context.Context, challengeID, userID int) (*grunga.MutationResult, error)
	DeclineChallenge(ctx context.Context, challengeID, userID int) (*grunga.MutationResult, error)
	CompleteChallenge(ctx context.Context, challengeID, userID int) (*grunga.MutationResult, error)
}

type SendRequest struct {
	ToUserID page.FlexInt `json:"toUserId"`
	Target   page.FlexInt `json:"target"`
}

type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type Handler struct {
	api            upstream
	users          *identity.Users
	metricsManager *metrics.Manager
}

func NewHandler(api upstream, users *identity.Users, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		api:            api,
		users:          users,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/challenges", handler.HandleList).Methods("GET").Name("challenges-list")
	router.HandleFunc("/challenges", handler.HandleSend).Methods("POST").Name("challenges-send")
	router.HandleFunc("/challenges/{id}/{action}", handler.HandleAction).Methods("POST").Name("challenges-action")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "challengesHandler.list")
	defer span.End()

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "challenges") {
		d := demo.Default()
		view := BuildView(d.User, d.Challenges, d.UsersByID(), d.Others)
		view.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	me, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgLoadError, err)
		return
	}

	others := handler.loadOthers(ctx, me.Username)
	usersByID := map[int]grunga.User{me.UserID: *me}
	for _, u := range others {
		usersByID[u.UserID] = u
	}

	lists, err := handler.loadLists(ctx)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	span.SetAttributes(
		attribute.Int("challenges.incoming", len(lists[grunga.BoxIncoming])),
		attribute.Int("challenges.active", len(lists[grunga.BoxActive])),
		attribute.Int("challenges.completed", len(lists[grunga.BoxCompleted])),
	)
	pkg.WriteJSON(w, http.StatusOK, BuildView(*me, lists, usersByID, others))
}

// loadOthers resolves the other known demo users. Failures only cost a
// nicer name, so they are logged and skipped.
func (handler *Handler) loadOthers(ctx context.Context, current string) []grunga.User {
	var others []grunga.User
	for _, name := range handler.users.Others(current) {
		u, err := handler.api.GetUser(ctx, name)
		if err != nil {
			log.Errorf("load demo user %s: %s", name, err)
			continue
		}
		others = append(others, *u)
	}
	return others
}

// loadLists fetches the three challenge lists in parallel.
func (handler *Handler) loadLists(ctx context.Context) (map[grunga.ChallengeBox][]grunga.Challenge, error) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	lists := make(map[grunga.ChallengeBox][]grunga.Challenge, len(boxes))

	for _, box := range boxes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := handler.api.ListChallenges(ctx, box)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, err)
				return
			}
			lists[box] = list
		}()
	}
	wg.Wait()

	if errs != nil {
		return nil, errs
	}
	return lists, nil
}

func (handler *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "challengesHandler.send")
	defer span.End()

	var req SendRequest
	if err := page.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}
	if req.ToUserID <= 0 {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgPickRecipient)
		return
	}
	if req.Target <= 0 {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgPositiveTarget)
		return
	}

	me, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgSendFailed, err)
		return
	}
	if int(req.ToUserID) == me.UserID {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgPickRecipient)
		return
	}

	_, err = handler.api.SendChallenge(ctx, grunga.NewChallenge{
		FromUserID: me.UserID,
		ToUserID:   int(req.ToUserID),
		Kind:       defaultKind,
		Target:     int(req.Target),
	})
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgSendFailed, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, MessageResponse{OK: true, Message: MsgSent})
}

func (handler *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "challengesHandler.action")
	defer span.End()

	vars := mux.Vars(r)
	challengeID, err := page.ParseID(vars["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	action := Action(vars["action"])
	var transition func(ctx context.Context, challengeID, userID int) (*grunga.MutationResult, error)
	switch action {
	case ActionAccept:
		transition = handler.api.AcceptChallenge
	case ActionDecline:
		transition = handler.api.DeclineChallenge
	case ActionComplete:
		transition = handler.api.CompleteChallenge
	default:
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidAction)
		return
	}
	span.SetAttributes(attribute.String("challenge.action", string(action)))

	me, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgUpdateFailed, err)
		return
	}

	if _, err := transition(ctx, challengeID, me.UserID); err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgUpdateFailed, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, MessageResponse{
		OK:      true,
		Message: fmt.Sprintf("Challenge %d: %s done.", challengeID, action),
	})
}
