package identity

import (
	"context"
	"errors"
	"slices"
	"strings"
)

const (
	// HeaderName carries the demo identity on every request, both the ones
	// we receive and the ones we send upstream.
	HeaderName        = "X-Demo-User"
	SessionCookieName = "grunga_session"
)

var ErrUnknownUser = errors.New("unknown demo user")

type usernameCtxKey struct{}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameCtxKey{}, username)
}

// Username returns the demo user stored in ctx, or empty string.
func Username(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	username, _ := ctx.Value(usernameCtxKey{}).(string)
	return username
}

// Users is the fixed list of demo identities one can act as.
type Users struct {
	known       []string
	defaultUser string
}

func NewUsers(known []string, defaultUser string) *Users {
	cleaned := make([]string, 0, len(known))
	for _, k := range known {
		k = strings.TrimSpace(k)
		if k == "" || slices.Contains(cleaned, k) {
			continue
		}
		cleaned = append(cleaned, k)
	}

	defaultUser = strings.TrimSpace(defaultUser)
	if defaultUser == "" && len(cleaned) > 0 {
		defaultUser = cleaned[0]
	}
	if defaultUser != "" && !slices.Contains(cleaned, defaultUser) {
		cleaned = append([]string{defaultUser}, cleaned...)
	}

	return &Users{
		known:       cleaned,
		defaultUser: defaultUser,
	}
}

func (u *Users) IsKnown(username string) bool {
	return slices.Contains(u.known, username)
}

func (u *Users) Default() string {
	return u.defaultUser
}

func (u *Users) All() []string {
	return slices.Clone(u.known)
}

// Others returns every known user except current, in list order.
func (u *Users) Others(current string) []string {
	others := make([]string, 0, len(u.known))
	for _, k := range u.known {
		if k != current {
			others = append(others, k)
		}
	}
	return others
}
