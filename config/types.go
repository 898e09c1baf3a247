package config

type ContextSelection struct {
	Name string
}

const (
	ContextFileEnvVar         = "NFVCTL_CONTEXTS_FILE"
	ContextNameEnvVar         = "NFVCTL_CONTEXT"
	BaseURLEnvVar             = "NFVCTL_BASE_URL"
	BearerTokenEnvVar         = "NFVCTL_TOKEN"
	AuthHeaderEnvVar          = "NFVCTL_AUTH_HEADER"
	AuthTokenEnvVar           = "NFVCTL_AUTH_TOKEN"
	DefaultContextCatalogPath = "~/.nfvctl/contexts.yaml"
	DefaultAPIVersion         = "v1.0"
	EnvContextName            = "env"
	DefaultAuthHeader         = "X-Auth-Token"
	OAuthClientCreds          = "client_credentials"
)

type ContextCatalog struct {
	Contexts   []Context `mapstructure:"contexts" yaml:"contexts"`
	CurrentCtx string    `mapstructure:"current-ctx" yaml:"current-ctx"`
}

type Context struct {
	Name   string     `mapstructure:"name" yaml:"name" json:"name"`
	Server HTTPServer `mapstructure:"server" yaml:"server" json:"server"`
}

type HTTPServer struct {
	BaseURL        string            `mapstructure:"base-url" yaml:"base-url" json:"base-url"`
	APIVersion     string            `mapstructure:"api-version" yaml:"api-version,omitempty" json:"api-version,omitempty"`
	DefaultHeaders map[string]string `mapstructure:"default-headers" yaml:"default-headers,omitempty" json:"default-headers,omitempty"`
	Auth           *HTTPAuth         `mapstructure:"auth" yaml:"auth,omitempty" json:"auth,omitempty"`
	TLS            *TLS              `mapstructure:"tls" yaml:"tls,omitempty" json:"tls,omitempty"`
	RateLimit      *RateLimit        `mapstructure:"rate-limit" yaml:"rate-limit,omitempty" json:"rate-limit,omitempty"`
}

type HTTPAuth struct {
	OAuth2       *OAuth2          `mapstructure:"oauth2" yaml:"oauth2,omitempty" json:"oauth2,omitempty"`
	BasicAuth    *BasicAuth       `mapstructure:"basic-auth" yaml:"basic-auth,omitempty" json:"basic-auth,omitempty"`
	BearerToken  *BearerTokenAuth `mapstructure:"bearer-token" yaml:"bearer-token,omitempty" json:"bearer-token,omitempty"`
	CustomHeader *HeaderTokenAuth `mapstructure:"custom-header" yaml:"custom-header,omitempty" json:"custom-header,omitempty"`
}

type OAuth2 struct {
	TokenURL     string `mapstructure:"token-url" yaml:"token-url" json:"token-url"`
	GrantType    string `mapstructure:"grant-type" yaml:"grant-type" json:"grant-type"`
	ClientID     string `mapstructure:"client-id" yaml:"client-id" json:"client-id"`
	ClientSecret string `mapstructure:"client-secret" yaml:"client-secret" json:"client-secret"`
	Scope        string `mapstructure:"scope" yaml:"scope,omitempty" json:"scope,omitempty"`
	Audience     string `mapstructure:"audience" yaml:"audience,omitempty" json:"audience,omitempty"`
}

type BasicAuth struct {
	Username string `mapstructure:"username" yaml:"username" json:"username"`
	Password string `mapstructure:"password" yaml:"password" json:"password"`
}

type BearerTokenAuth struct {
	Token string `mapstructure:"token" yaml:"token" json:"token"`
}

// HeaderTokenAuth covers Keystone style X-Auth-Token headers.
type HeaderTokenAuth struct {
	Header string `mapstructure:"header" yaml:"header" json:"header"`
	Token  string `mapstructure:"token" yaml:"token" json:"token"`
}

type TLS struct {
	CACertFile         string `mapstructure:"ca-cert-file" yaml:"ca-cert-file,omitempty" json:"ca-cert-file,omitempty"`
	ClientCertFile     string `mapstructure:"client-cert-file" yaml:"client-cert-file,omitempty" json:"client-cert-file,omitempty"`
	ClientKeyFile      string `mapstructure:"client-key-file" yaml:"client-key-file,omitempty" json:"client-key-file,omitempty"`
	InsecureSkipVerify bool   `mapstructure:"insecure-skip-verify" yaml:"insecure-skip-verify,omitempty" json:"insecure-skip-verify,omitempty"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests-per-second" yaml:"requests-per-second" json:"requests-per-second"`
	Burst             int     `mapstructure:"burst" yaml:"burst,omitempty" json:"burst,omitempty"`
}
