// Package integration_testing runs the web service against a real redis
// started in docker and a fake Grunga API.
package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/2beens/grunga/internal"
	"github.com/2beens/grunga/internal/config"

	"github.com/gorilla/mux"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9200
	serverHost = "127.0.0.1"

	mutationsPerMin = 3
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

func getTestConfig(redisPort, apiURL string) *config.Config {
	return &config.Config{
		Environment:              "development",
		Host:                     serverHost,
		Port:                     serverPort,
		LogLevel:                 "debug",
		GrungaApiURL:             apiURL,
		GrungaApiTimeoutSeconds:  2,
		UserCacheTTLSeconds:      60,
		HealthCacheTTLSeconds:    0,
		RedisHost:                "localhost",
		RedisPort:                redisPort,
		PrometheusMetricsHost:    serverHost,
		PrometheusMetricsPort:    "9201",
		DefaultDemoUser:          "demo1",
		DemoUsers:                []string{"demo1", "demo2"},
		SessionTTLHours:          1,
		MutationsRateLimitPerMin: mutationsPerMin,
		AllowedOrigins:           []string{"http://localhost:8080"},
	}
}

// fakeAPI answers the Grunga API calls the tests make and counts the
// friend requests that made it past the rate limiter.
type fakeAPI struct {
	mu             sync.Mutex
	friendRequests int
}

func (f *fakeAPI) FriendRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.friendRequests
}

func newFakeAPI(f *fakeAPI) *httptest.Server {
	users := map[string]string{
		"demo1": `{"userId": 1, "username": "demo1", "displayName": "Demo One"}`,
		"demo2": `{"userId": 2, "username": "demo2", "displayName": "Demo Two"}`,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true}`))
	})
	r.HandleFunc("/users/{id}/points", func(w http.ResponseWriter, r *http.Request) {
		total := 100
		if mux.Vars(r)["id"] == "2" {
			total = 200
		}
		_, _ = fmt.Fprintf(w, `{"totalPoints": %d, "weeklyPoints": 0, "dailyPoints": 0, "streak": 0}`, total)
	})
	r.HandleFunc("/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		user, ok := users[mux.Vars(r)["user"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(user))
	})
	r.HandleFunc("/friends/requests", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.friendRequests++
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok": true}`))
	}).Methods(http.MethodPost)

	return httptest.NewServer(r)
}

func redisSetup(pool *dockertest.Pool) (string, func(), error) {
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", nil, fmt.Errorf("run redis: %w", err)
	}

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, func() {
		if err := pool.Purge(redisResource); err != nil {
			fmt.Printf("purge redis: %s\n", err)
		}
	}, nil
}

type testEnv struct {
	server    *internal.Server
	api       *fakeAPI
	redisPort string
	cleanup   []func()
}

func (e *testEnv) teardown() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
}

func serverSetup(ctx context.Context) (_ *testEnv, err error) {
	env := &testEnv{api: &fakeAPI{}}
	defer func() {
		if err != nil {
			env.teardown()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	redisPort, redisCleanup, err := redisSetup(pool)
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}
	env.redisPort = redisPort
	env.cleanup = append(env.cleanup, redisCleanup)

	api := newFakeAPI(env.api)
	env.cleanup = append(env.cleanup, api.Close)

	// redis takes a moment to accept connections
	cfg := getTestConfig(redisPort, api.URL)
	err = pool.Retry(func() error {
		server, err := internal.NewServer(ctx, internal.NewServerParams{
			Config:      cfg,
			VersionInfo: "test-version-info",
		})
		if err != nil {
			return err
		}
		if err := server.Ping(ctx); err != nil {
			server.GracefulShutdown()
			return err
		}
		env.server = server
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	env.server.Serve(serverHost, serverPort)
	env.cleanup = append(env.cleanup, env.server.GracefulShutdown)

	return env, nil
}
