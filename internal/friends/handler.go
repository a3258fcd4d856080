package friends

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/grunga/internal/cache"
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
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=friends_test

const (
	MsgLoadError      = "Could not load friends data."
	MsgSearchError    = "Error while searching."
	MsgRequestSent    = "Friend request sent!"
	MsgRequestFailed  = "Could not send request."
	MsgRespondFailed  = "Could not update request."
	MsgAccepted       = "Friend request accepted."
	MsgDeclined       = "Friend request declined."
	MsgRemoved        = "Friend removed."
	MsgRemoveFailed   = "Could not remove friend."
	MsgInvalidRequest = "Invalid request."
	MsgInvalidAction  = "Unknown request action."

	searchCacheTTL = 30 * time.Second
)

type upstream interface {
	Health(ctx context.Context) error
	ListFriends(ctx context.Context) (*grunga.Friends, error)
	SearchUsers(ctx context.Context, query string) ([]grunga.User, error)
	SendFriendRequest(ctx context.Context, friendID int) (*grunga.MutationResult, error)
	RespondFriendRequest(ctx context.Context, otherUserID int, action grunga.FriendAction) (*grunga.MutationResult, error)
	RemoveFriend(ctx context.Context, otherUserID int) (*grunga.MutationResult, error)
}

type SendRequest struct {
	FriendID page.FlexInt `json:"friendId"`
}

// RespondRequest names the other user, never the friendship row id.
type RespondRequest struct {
	OtherUserID page.FlexInt `json:"otherUserId"`
	Action      string       `json:"action"`
}

type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type Handler struct {
	api            upstream
	searchCache    cache.Cache
	metricsManager *metrics.Manager
}

// NewHandler creates the friends handler. searchCache may be nil.
func NewHandler(api upstream, searchCache cache.Cache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		api:            api,
		searchCache:    searchCache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/friends", handler.HandleList).Methods("GET").Name("friends-list")
	router.HandleFunc("/friends/search", handler.HandleSearch).Methods("GET").Name("friends-search")
	router.HandleFunc("/friends/requests", handler.HandleSendRequest).Methods("POST").Name("friends-request")
	router.HandleFunc("/friends/requests/respond", handler.HandleRespond).Methods("POST").Name("friends-respond")
	router.HandleFunc("/friends/{id}", handler.HandleRemove).Methods("DELETE").Name("friends-remove")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "friendsHandler.list")
	defer span.End()

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "friends") {
		view := BuildView(demo.Default().Friends)
		view.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	f, err := handler.api.ListFriends(ctx)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	span.SetAttributes(
		attribute.Int("friends.count", len(f.Friends)),
		attribute.Int("friends.incoming", len(f.Incoming)),
	)
	pkg.WriteJSON(w, http.StatusOK, BuildView(*f))
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "friendsHandler.search")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(query) < MinSearchLength {
		pkg.WriteJSON(w, http.StatusOK, SearchView{Query: query, Rows: []Row{}})
		return
	}

	users, err := handler.searchUsers(ctx, query)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgSearchError, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, BuildSearchView(query, users))
}

// searchUsers caches results per user and lower cased query. Failed
// searches are not cached.
func (handler *Handler) searchUsers(ctx context.Context, query string) ([]grunga.User, error) {
	if handler.searchCache == nil {
		return handler.api.SearchUsers(ctx, query)
	}

	key := identity.Username(ctx) + "|" + strings.ToLower(query)
	if cached, found := handler.searchCache.Get(key); found {
		if users, ok := cached.([]grunga.User); ok {
			return users, nil
		}
	}

	users, err := handler.api.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	if !handler.searchCache.SetWithTTL(key, users, int64(len(users)+1), searchCacheTTL) {
		log.Tracef("search cache dropped [%s]", key)
	}
	return users, nil
}

func (handler *Handler) HandleSendRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "friendsHandler.sendRequest")
	defer span.End()

	var req SendRequest
	if err := page.DecodeJSON(r, &req); err != nil || req.FriendID <= 0 {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	if _, err := handler.api.SendFriendRequest(ctx, int(req.FriendID)); err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgRequestFailed, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, MessageResponse{OK: true, Message: MsgRequestSent})
}

func (handler *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "friendsHandler.respond")
	defer span.End()

	var req RespondRequest
	if err := page.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	otherUserID := int(req.OtherUserID)
	if otherUserID <= 0 {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	action, err := grunga.ParseFriendAction(req.Action)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidAction)
		return
	}
	span.SetAttributes(attribute.String("friends.action", string(action)))

	if _, err := handler.api.RespondFriendRequest(ctx, otherUserID, action); err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgRespondFailed, err)
		return
	}

	message := MsgAccepted
	if action == grunga.FriendDecline {
		message = MsgDeclined
	}
	pkg.WriteJSON(w, http.StatusOK, MessageResponse{OK: true, Message: message})
}

func (handler *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "friendsHandler.remove")
	defer span.End()

	otherUserID, err := page.ParseID(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	if _, err := handler.api.RemoveFriend(ctx, otherUserID); err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgRemoveFailed, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, MessageResponse{OK: true, Message: MsgRemoved})
}
