package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/grunga/internal"
	"github.com/2beens/grunga/internal/config"
	"github.com/2beens/grunga/internal/logging"
	"github.com/2beens/grunga/pkg"

	log "github.com/sirupsen/logrus"
)

const serviceName = "grunga-web"

type secrets struct {
	redisPassword    string
	sentryDSN        string
	honeycombEnabled bool
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if err := run(*env, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", serviceName, err)
		os.Exit(1)
	}
}

func run(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sec := readSecrets()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: serviceName,
	})

	log.WithFields(log.Fields{
		"port":       cfg.Port,
		"grunga_api": cfg.GrungaApiURL,
		"demo_users": strings.Join(cfg.DemoUsers, ","),
	}).Infof("starting in [%s] environment", cfg.Environment)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("no version info from git: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		VersionInfo:             versionInfo,
		RedisPassword:           sec.redisPassword,
		HoneycombTracingEnabled: sec.honeycombEnabled,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnf("shutdown signal received, stopping %s ...", serviceName)
	server.GracefulShutdown()
	return nil
}

// readSecrets takes everything sensitive from the environment, warning
// about what is missing.
func readSecrets() secrets {
	sec := secrets{
		redisPassword:    os.Getenv("GRUNGA_REDIS_PASS"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}

	if sec.redisPassword == "" {
		log.Warnln("redis password not set, use GRUNGA_REDIS_PASS")
	}
	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}
	if sec.honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}
	return sec
}

// tryGetLastCommitHash assumes the binary runs from a git checkout.
func tryGetLastCommitHash() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(out)), nil
}
