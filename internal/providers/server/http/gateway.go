package http

import (
	"crypto/tls"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/internal/providers/shared/tlsconfig"
	"github.com/crmarques/nfvctl/server"
	"golang.org/x/time/rate"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMediaType   = "application/json"

	// VNF listings embed their templates, so the cap is generous.
	defaultMaxResponseBytes int64 = 16 << 20
)

var _ server.Client = (*Gateway)(nil)

type Gateway struct {
	baseURL        *url.URL
	apiVersion     string
	defaultHeaders map[string]string
	auth           authConfig
	client         *http.Client
	tlsDebug       tlsDebugInfo
	limiter        *rate.Limiter
	maxResponse    int64
}

type GatewayOption func(*Gateway)

func WithHTTPClient(client *http.Client) GatewayOption {
	return func(g *Gateway) {
		if g == nil || client == nil {
			return
		}
		g.client = client
	}
}

// WithMaxResponseBytes caps how much of a response body is read.
func WithMaxResponseBytes(limit int64) GatewayOption {
	return func(g *Gateway) {
		if g == nil || limit <= 0 {
			return
		}
		g.maxResponse = limit
	}
}

func NewGateway(cfg config.HTTPServer, opts ...GatewayOption) (*Gateway, error) {
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	apiVersion, err := parseAPIVersion(cfg.APIVersion)
	if err != nil {
		return nil, err
	}

	tlsConfig, err := buildTLSConfig(cfg.TLS)
	if err != nil {
		return nil, err
	}

	limiter, err := buildLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	gateway := &Gateway{
		baseURL:        baseURL,
		apiVersion:     apiVersion,
		defaultHeaders: cloneStringMap(cfg.DefaultHeaders),
		client: &http.Client{
			Timeout:   defaultHTTPTimeout,
			Transport: transport,
		},
		tlsDebug:    newTLSDebugInfo(cfg.TLS),
		limiter:     limiter,
		maxResponse: defaultMaxResponseBytes,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(gateway)
	}

	auth, err := buildAuthConfig(cfg.Auth, gateway.client)
	if err != nil {
		return nil, err
	}
	gateway.auth = auth

	return gateway, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, validationError("server.base-url is required", nil)
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return nil, validationError("server.base-url is invalid", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, validationError("server.base-url must use http or https", nil)
	}
	if parsed.Host == "" {
		return nil, validationError("server.base-url host is required", nil)
	}

	if parsed.Path == "" {
		parsed.Path = "/"
	}

	return parsed, nil
}

func parseAPIVersion(raw string) (string, error) {
	value := strings.Trim(strings.TrimSpace(raw), "/")
	if value == "" {
		return config.DefaultAPIVersion, nil
	}
	if strings.Contains(value, "/") {
		return "", validationError("server.api-version must be a single path segment", nil)
	}
	return value, nil
}

func buildTLSConfig(tlsSettings *config.TLS) (*tls.Config, error) {
	return tlsconfig.BuildTLSConfig(tlsSettings, "server")
}

func buildLimiter(settings *config.RateLimit) (*rate.Limiter, error) {
	if settings == nil {
		return nil, nil
	}
	if settings.RequestsPerSecond <= 0 {
		return nil, validationError("server.rate-limit.requests-per-second must be positive", nil)
	}

	burst := settings.Burst
	if burst <= 0 {
		burst = int(math.Max(1, math.Ceil(settings.RequestsPerSecond)))
	}
	return rate.NewLimiter(rate.Limit(settings.RequestsPerSecond), burst), nil
}

func cloneStringMap(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}

	cloned := make(map[string]string, len(values))
	for key, value := range values {
		cloned[key] = value
	}
	return cloned
}
