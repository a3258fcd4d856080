package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/grunga/internal/badges"
	"github.com/2beens/grunga/internal/boss"
	"github.com/2beens/grunga/internal/cache"
	"github.com/2beens/grunga/internal/challenges"
	"github.com/2beens/grunga/internal/config"
	"github.com/2beens/grunga/internal/friends"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/home"
	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/middleware"
	"github.com/2beens/grunga/internal/misc"
	"github.com/2beens/grunga/internal/profile"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/internal/workouts"
)

const mutationsRouterName = "mutations"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	api         *grunga.Client
	resolver    *identity.Resolver
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	searchCache cache.Cache
	now         func() time.Time

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("grunga", "web", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	// sessions degrade to the default demo user when redis is down
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "grunga-web", rdb)
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	api := grunga.NewClient(grunga.ClientParams{
		BaseURL:        cfg.GrungaApiURL,
		Timeout:        time.Duration(cfg.GrungaApiTimeoutSeconds) * time.Second,
		UserCacheTTL:   time.Duration(cfg.UserCacheTTLSeconds) * time.Second,
		HealthCacheTTL: time.Duration(cfg.HealthCacheTTLSeconds) * time.Second,
		MetricsManager: metricsManager,
	})

	searchCache, err := cache.NewSearchCache()
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}

	users := identity.NewUsers(cfg.DemoUsers, cfg.DefaultDemoUser)
	sessionStore := identity.NewSessionStore(cfg.SessionTTL(), rdb)

	return &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		api:         api,
		resolver:    identity.NewResolver(users, sessionStore),
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		searchCache: searchCache,
		now:         time.Now,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// Ping checks the redis connection used for sessions and rate limiting.
func (s *Server) Ping(ctx context.Context) error {
	if s.redisClient == nil {
		return errors.New("no redis client")
	}
	return s.redisClient.Ping(ctx).Err()
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("grunga-router"))

	misc.NewHandler(s.api, s.versionInfo).SetupRoutes(r)
	identity.NewHandler(s.resolver, s.config.SessionTTL(), s.metricsManager).SetupRoutes(r)

	home.NewHandler(s.api, s.metricsManager, s.now).SetupRoutes(r)
	boss.NewHandler(s.api, s.metricsManager).SetupRoutes(r)
	workouts.NewHandler(s.api, s.metricsManager, s.now).SetupRoutes(r)
	challenges.NewHandler(s.api, s.resolver.Users(), s.metricsManager).SetupRoutes(r)
	friends.NewHandler(s.api, s.searchCache, s.metricsManager).SetupRoutes(r)
	badges.NewHandler(s.api, s.metricsManager).SetupRoutes(r)
	profile.NewHandler(s.api, s.metricsManager).SetupRoutes(r)

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	demoUserMiddleware := middleware.NewDemoUserMiddlewareHandler(s.resolver)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(demoUserMiddleware.DemoUser())
	r.Use(middleware.RateLimit(s.rateLimiter, mutationsRouterName, s.config.MutationsRateLimitPerMin, s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
