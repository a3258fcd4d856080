package identity

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type DemoUserView struct {
	Username   string   `json:"username"`
	KnownUsers []string `json:"knownUsers"`
}

const maxSwitchBodyBytes = 64 * 1024

type switchRequest struct {
	Username string `json:"username"`
}

type Handler struct {
	resolver       *Resolver
	sessionTTL     time.Duration
	metricsManager *metrics.Manager
}

func NewHandler(resolver *Resolver, sessionTTL time.Duration, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		resolver:       resolver,
		sessionTTL:     sessionTTL,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/demo-user", handler.HandleGet).Methods("GET").Name("demo-user-get")
	router.HandleFunc("/demo-user", handler.HandleSwitch).Methods("POST", "OPTIONS").Name("demo-user-switch")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "identityHandler.get")
	defer span.End()

	username := Username(r.Context())
	if username == "" {
		username = handler.resolver.Resolve(r)
	}
	span.SetAttributes(attribute.String("demo.user", username))

	pkg.WriteJSON(w, http.StatusOK, DemoUserView{
		Username:   username,
		KnownUsers: handler.resolver.Users().All(),
	})
}

func (handler *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "identityHandler.switch")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSwitchBodyBytes+1))
	if err != nil || len(body) > maxSwitchBodyBytes {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var req switchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := SessionID(r)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	username, err := handler.resolver.Switch(ctx, sessionID, req.Username)
	if errors.Is(err, ErrUnknownUser) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "unknown demo user")
		return
	}
	if err != nil {
		log.Errorf("switch demo user to [%s]: %s", req.Username, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "could not switch demo user")
		return
	}

	span.SetAttributes(attribute.String("demo.user", username))
	if handler.metricsManager != nil {
		handler.metricsManager.CounterDemoUserSwitches.Inc()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(handler.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Debugf("demo user switched to [%s] for session %s", username, sessionID)
	pkg.WriteJSON(w, http.StatusOK, DemoUserView{
		Username:   username,
		KnownUsers: handler.resolver.Users().All(),
	})
}
