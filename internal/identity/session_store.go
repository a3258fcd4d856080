package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/grunga/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const sessionKeyPrefix = "grunga-demo-user||"

var ErrNoSession = errors.New("no demo user stored for session")

// SessionStore keeps the selected demo user per browser session in redis.
type SessionStore struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessionStore.get")
	defer func() { tracing.EndSpan(span, err) }()

	username, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("get session %s: %w", sessionID, err)
	}

	span.SetAttributes(attribute.String("demo.user", username))
	return username, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID, username string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessionStore.set")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("demo.user", username))

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+sessionID, username, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session %s: %w", sessionID, err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
