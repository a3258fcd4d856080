package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=identity_test

type Store interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, username string) error
}

// Resolver decides which demo user a request acts as.
// Precedence: a known X-Demo-User header, then the session store, then the
// default user. Store failures fall back to the default user.
type Resolver struct {
	users *Users
	store Store
}

func NewResolver(users *Users, store Store) *Resolver {
	return &Resolver{
		users: users,
		store: store,
	}
}

func (r *Resolver) Users() *Users {
	return r.users
}

func (r *Resolver) Resolve(req *http.Request) string {
	if header := strings.TrimSpace(req.Header.Get(HeaderName)); header != "" {
		if r.users.IsKnown(header) {
			return header
		}
		log.Debugf("ignoring unknown demo user header [%s]", header)
	}

	sessionID := SessionID(req)
	if sessionID == "" || r.store == nil {
		return r.users.Default()
	}

	username, err := r.store.Get(req.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			log.Errorf("resolve demo user for session %s: %s", sessionID, err)
		}
		return r.users.Default()
	}
	if !r.users.IsKnown(username) {
		return r.users.Default()
	}

	return username
}

// Switch validates username and persists it for the given session.
func (r *Resolver) Switch(ctx context.Context, sessionID, username string) (string, error) {
	username = strings.TrimSpace(username)
	if !r.users.IsKnown(username) {
		return "", ErrUnknownUser
	}
	if r.store == nil {
		return username, nil
	}
	if err := r.store.Set(ctx, sessionID, username); err != nil {
		return "", err
	}
	return username, nil
}

// SessionID reads the session cookie, empty when missing.
func SessionID(req *http.Request) string {
	c, err := req.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
