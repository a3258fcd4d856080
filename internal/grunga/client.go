package grunga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte  = 1024 * 1024
	cacheSize = 10 * megabyte

	defaultTimeout = 10 * time.Second
)

type ClientParams struct {
	BaseURL        string
	Timeout        time.Duration
	UserCacheTTL   time.Duration
	HealthCacheTTL time.Duration
	// HTTPClient is optional, a traced client with Timeout is used if nil.
	HTTPClient     *http.Client
	MetricsManager *metrics.Manager
}

// Client talks to the Grunga API. It is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	cache          *freecache.Cache
	userCacheTTL   int
	healthCacheTTL int
	metricsManager *metrics.Manager
}

func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		baseURL:        strings.TrimSuffix(params.BaseURL, "/"),
		httpClient:     httpClient,
		cache:          freecache.NewCache(cacheSize),
		userCacheTTL:   int(params.UserCacheTTL.Seconds()),
		healthCacheTTL: int(params.HealthCacheTTL.Seconds()),
		metricsManager: params.MetricsManager,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post always sends a JSON body, {} when body is nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, jsonBody(body), out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, jsonBody(body), out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func jsonBody(body any) any {
	if body == nil {
		return struct{}{}
	}
	return body
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "grungaApi."+strings.ToLower(method))
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("grunga.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if username := identity.Username(ctx); username != "" {
		req.Header.Set(identity.HeaderName, username)
		span.SetAttributes(attribute.String("demo.user", username))
	}

	log.Tracef("grunga api call: %s %s", method, path)

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(method, resp, begin)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBytes),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) observe(method string, resp *http.Response, begin time.Time) {
	if c.metricsManager == nil {
		return
	}
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.metricsManager.CounterUpstreamRequests.With(prometheus.Labels{
		"method": method,
		"status": status,
	}).Inc()
	c.metricsManager.HistogramUpstreamDuration.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}
