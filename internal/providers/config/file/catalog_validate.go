package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/crmarques/nfvctl/config"
)

func validateCatalog(contextCatalog config.ContextCatalog) error {
	if len(contextCatalog.Contexts) == 0 {
		if contextCatalog.CurrentCtx != "" {
			return validationError("current-ctx must be empty when contexts list is empty", nil)
		}
		return nil
	}

	seen := map[string]struct{}{}
	for _, item := range contextCatalog.Contexts {
		if strings.TrimSpace(item.Name) == "" {
			return validationError("context name must not be empty", nil)
		}
		if _, exists := seen[item.Name]; exists {
			return validationError(fmt.Sprintf("duplicate context name %q", item.Name), nil)
		}
		seen[item.Name] = struct{}{}
	}

	if contextCatalog.CurrentCtx != "" {
		if _, exists := seen[contextCatalog.CurrentCtx]; !exists {
			return validationError(fmt.Sprintf("current-ctx %q does not match any context", contextCatalog.CurrentCtx), nil)
		}
	}
	return nil
}

func validateContext(cfg config.Context) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return validationError("context name is required", nil)
	}
	if strings.TrimSpace(cfg.Server.BaseURL) == "" {
		return validationError(fmt.Sprintf("context %q: server.base-url is required", cfg.Name), nil)
	}
	if cfg.Server.RateLimit != nil && cfg.Server.RateLimit.RequestsPerSecond <= 0 {
		return validationError(fmt.Sprintf("context %q: server.rate-limit.requests-per-second must be positive", cfg.Name), nil)
	}
	return nil
}

// applyEnvOverrides layers NFVCTL_* variables over a resolved context. A
// custom header token wins over a bearer token when both are set.
func applyEnvOverrides(cfg config.Context) config.Context {
	if value, ok := lookupEnv(config.BaseURLEnvVar); ok {
		cfg.Server.BaseURL = value
	}

	if token, ok := lookupEnv(config.BearerTokenEnvVar); ok {
		cfg.Server.Auth = &config.HTTPAuth{
			BearerToken: &config.BearerTokenAuth{Token: token},
		}
	}

	header, hasHeader := lookupEnv(config.AuthHeaderEnvVar)
	if token, hasToken := lookupEnv(config.AuthTokenEnvVar); hasToken {
		if !hasHeader {
			header = config.DefaultAuthHeader
		}
		cfg.Server.Auth = &config.HTTPAuth{
			CustomHeader: &config.HeaderTokenAuth{Header: header, Token: token},
		}
	}

	return cfg
}

// lookupEnv treats blank values as unset.
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
