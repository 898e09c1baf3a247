package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/crmarques/nfvctl/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type authMode int

const (
	authModeNone authMode = iota
	authModeOAuth2
	authModeBasic
	authModeBearer
	authModeCustomHeader
)

type authConfig struct {
	mode         authMode
	tokenSource  oauth2.TokenSource
	basicAuth    config.BasicAuth
	bearerToken  config.BearerTokenAuth
	customHeader config.HeaderTokenAuth
}

func buildAuthConfig(cfg *config.HTTPAuth, client *http.Client) (authConfig, error) {
	if cfg == nil {
		return authConfig{mode: authModeNone}, nil
	}

	setCount := 0
	if cfg.OAuth2 != nil {
		setCount++
	}
	if cfg.BasicAuth != nil {
		setCount++
	}
	if cfg.BearerToken != nil {
		setCount++
	}
	if cfg.CustomHeader != nil {
		setCount++
	}
	if setCount != 1 {
		return authConfig{}, validationError("server.auth must define exactly one auth mode", nil)
	}

	switch {
	case cfg.OAuth2 != nil:
		return buildOAuth2Config(*cfg.OAuth2, client)
	case cfg.BasicAuth != nil:
		basic := *cfg.BasicAuth
		if basic.Username == "" || basic.Password == "" {
			return authConfig{}, validationError("server.auth.basic-auth requires username and password", nil)
		}
		return authConfig{mode: authModeBasic, basicAuth: basic}, nil
	case cfg.BearerToken != nil:
		bearer := *cfg.BearerToken
		if bearer.Token == "" {
			return authConfig{}, validationError("server.auth.bearer-token.token is required", nil)
		}
		return authConfig{mode: authModeBearer, bearerToken: bearer}, nil
	default:
		custom := *cfg.CustomHeader
		if custom.Header == "" || custom.Token == "" {
			return authConfig{}, validationError("server.auth.custom-header requires header and token", nil)
		}
		return authConfig{mode: authModeCustomHeader, customHeader: custom}, nil
	}
}

func buildOAuth2Config(oauth config.OAuth2, client *http.Client) (authConfig, error) {
	if strings.TrimSpace(oauth.TokenURL) == "" ||
		strings.TrimSpace(oauth.GrantType) == "" ||
		strings.TrimSpace(oauth.ClientID) == "" ||
		strings.TrimSpace(oauth.ClientSecret) == "" {
		return authConfig{}, validationError("server.auth.oauth2 requires token-url, grant-type, client-id, client-secret", nil)
	}
	if strings.TrimSpace(oauth.GrantType) != config.OAuthClientCreds {
		return authConfig{}, validationError("server.auth.oauth2.grant-type supports only client_credentials", nil)
	}
	tokenURL, err := url.Parse(oauth.TokenURL)
	if err != nil || tokenURL.Scheme == "" || tokenURL.Host == "" {
		return authConfig{}, validationError("server.auth.oauth2.token-url is invalid", err)
	}

	credentials := clientcredentials.Config{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		TokenURL:     tokenURL.String(),
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	if scope := strings.TrimSpace(oauth.Scope); scope != "" {
		credentials.Scopes = strings.Fields(scope)
	}
	if audience := strings.TrimSpace(oauth.Audience); audience != "" {
		credentials.EndpointParams = url.Values{"audience": {audience}}
	}

	// Token requests share the gateway's TLS transport.
	tokenContext := context.WithValue(context.Background(), oauth2.HTTPClient, client)
	return authConfig{
		mode:        authModeOAuth2,
		tokenSource: credentials.TokenSource(tokenContext),
	}, nil
}

func (g *Gateway) applyAuth(request *http.Request) error {
	switch g.auth.mode {
	case authModeNone:
	case authModeOAuth2:
		token, err := g.auth.tokenSource.Token()
		if err != nil {
			return authError("oauth2 token request failed", err)
		}
		token.SetAuthHeader(request)
	case authModeBasic:
		request.SetBasicAuth(g.auth.basicAuth.Username, g.auth.basicAuth.Password)
	case authModeBearer:
		request.Header.Set("Authorization", "Bearer "+g.auth.bearerToken.Token)
	case authModeCustomHeader:
		request.Header.Set(g.auth.customHeader.Header, g.auth.customHeader.Token)
	default:
		return validationError("server.auth mode is not configured", nil)
	}
	return nil
}
