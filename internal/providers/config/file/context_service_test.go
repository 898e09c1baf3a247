package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
)

const catalogFixture = `contexts:
  - name: lab
    server:
      base-url: http://lab.example.com:9890
      auth:
        custom-header:
          header: X-Auth-Token
          token: lab-token
      rate-limit:
        requests-per-second: 5
        burst: 2
  - name: prod
    server:
      base-url: https://prod.example.com:9890
      api-version: v1.0
      auth:
        bearer-token:
          token: prod-token
current-ctx: lab
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.ContextFileEnvVar,
		config.ContextNameEnvVar,
		config.BaseURLEnvVar,
		config.BearerTokenEnvVar,
		config.AuthHeaderEnvVar,
		config.AuthTokenEnvVar,
	} {
		t.Setenv(key, "")
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contexts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func newTestService(t *testing.T, path string) *FileContextService {
	t.Helper()

	service, err := NewFileContextService(path)
	if err != nil {
		t.Fatalf("NewFileContextService returned error: %v", err)
	}
	return service
}

func newFixtureService(t *testing.T) *FileContextService {
	t.Helper()
	return newTestService(t, writeCatalog(t, catalogFixture))
}

func resolveContext(t *testing.T, service *FileContextService, selection config.ContextSelection) config.Context {
	t.Helper()

	resolved, err := service.ResolveContext(context.Background(), selection)
	if err != nil {
		t.Fatalf("ResolveContext returned error: %v", err)
	}
	return resolved
}

func assertTypedCategory(t *testing.T, err error, category faults.ErrorCategory) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", category)
	}
	if !faults.IsCategory(err, category) {
		t.Fatalf("expected %s error, got %v", category, err)
	}
}

func TestResolveContextUsesCurrentContext(t *testing.T) {
	clearEnv(t)
	service := newFixtureService(t)

	resolved := resolveContext(t, service, config.ContextSelection{})
	if resolved.Name != "lab" || resolved.Server.BaseURL != "http://lab.example.com:9890" {
		t.Fatalf("unexpected context %q at %q", resolved.Name, resolved.Server.BaseURL)
	}
	if resolved.Server.Auth == nil || resolved.Server.Auth.CustomHeader == nil {
		t.Fatalf("expected custom header auth, got %#v", resolved.Server.Auth)
	}
	if resolved.Server.Auth.CustomHeader.Token != "lab-token" {
		t.Fatalf("unexpected token %q", resolved.Server.Auth.CustomHeader.Token)
	}
	if resolved.Server.RateLimit == nil {
		t.Fatalf("expected rate limit settings")
	}
	if resolved.Server.RateLimit.RequestsPerSecond != 5 || resolved.Server.RateLimit.Burst != 2 {
		t.Fatalf("unexpected rate limit %#v", resolved.Server.RateLimit)
	}
}

func TestResolveContextSelectionOrder(t *testing.T) {
	clearEnv(t)
	service := newFixtureService(t)

	t.Setenv(config.ContextNameEnvVar, "prod")
	if resolved := resolveContext(t, service, config.ContextSelection{}); resolved.Name != "prod" {
		t.Fatalf("expected env selection prod, got %q", resolved.Name)
	}

	if resolved := resolveContext(t, service, config.ContextSelection{Name: "lab"}); resolved.Name != "lab" {
		t.Fatalf("expected explicit selection lab, got %q", resolved.Name)
	}

	_, err := service.ResolveContext(context.Background(), config.ContextSelection{Name: "missing"})
	assertTypedCategory(t, err, faults.NotFoundError)
}

func TestResolveContextEnvOverrides(t *testing.T) {
	clearEnv(t)
	service := newFixtureService(t)

	t.Setenv(config.BaseURLEnvVar, "http://override:9890")
	t.Setenv(config.AuthTokenEnvVar, "keystone-token")

	resolved := resolveContext(t, service, config.ContextSelection{Name: "prod"})
	if resolved.Server.BaseURL != "http://override:9890" {
		t.Fatalf("expected base url override, got %q", resolved.Server.BaseURL)
	}
	auth := resolved.Server.Auth
	if auth == nil || auth.CustomHeader == nil || auth.BearerToken != nil {
		t.Fatalf("expected custom header auth to replace bearer token, got %#v", auth)
	}
	if auth.CustomHeader.Header != "X-Auth-Token" || auth.CustomHeader.Token != "keystone-token" {
		t.Fatalf("unexpected custom header %#v", auth.CustomHeader)
	}
}

func TestResolveContextWithoutCatalog(t *testing.T) {
	clearEnv(t)
	service := newTestService(t, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := service.ResolveContext(context.Background(), config.ContextSelection{})
	assertTypedCategory(t, err, faults.ValidationError)

	t.Setenv(config.BaseURLEnvVar, "http://127.0.0.1:9890")
	t.Setenv(config.BearerTokenEnvVar, "abc")
	resolved := resolveContext(t, service, config.ContextSelection{})
	if resolved.Name != config.EnvContextName {
		t.Fatalf("expected env context, got %q", resolved.Name)
	}
	if resolved.Server.Auth == nil || resolved.Server.Auth.BearerToken == nil || resolved.Server.Auth.BearerToken.Token != "abc" {
		t.Fatalf("expected bearer token from env, got %#v", resolved.Server.Auth)
	}
}

func TestSetCurrentRewritesCatalog(t *testing.T) {
	clearEnv(t)
	service := newFixtureService(t)

	if err := service.SetCurrent(context.Background(), "prod"); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	current, err := service.GetCurrent(context.Background())
	if err != nil {
		t.Fatalf("GetCurrent returned error: %v", err)
	}
	if current.Name != "prod" {
		t.Fatalf("expected prod to be current, got %q", current.Name)
	}

	contexts, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(contexts) != 2 {
		t.Fatalf("expected two contexts, got %d", len(contexts))
	}

	err = service.SetCurrent(context.Background(), "nope")
	assertTypedCategory(t, err, faults.NotFoundError)
}

func TestLoadRejectsMalformedCatalog(t *testing.T) {
	clearEnv(t)
	service := newTestService(t, writeCatalog(t, "contexts: [unclosed\n"))

	_, err := service.List(context.Background())
	assertTypedCategory(t, err, faults.ParseError)
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	clearEnv(t)

	testCases := []struct {
		name    string
		catalog string
		message string
	}{
		{
			name:    "duplicate_names",
			catalog: "contexts:\n  - name: lab\n    server: {base-url: http://a:1}\n  - name: lab\n    server: {base-url: http://b:1}\n",
			message: `duplicate context name "lab"`,
		},
		{
			name:    "dangling_current",
			catalog: "contexts:\n  - name: lab\n    server: {base-url: http://a:1}\ncurrent-ctx: prod\n",
			message: `current-ctx "prod" does not match any context`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := newTestService(t, writeCatalog(t, testCase.catalog))

			_, err := service.List(context.Background())
			assertTypedCategory(t, err, faults.ValidationError)
			if err.Error() != testCase.message {
				t.Fatalf("expected message %q, got %q", testCase.message, err.Error())
			}
		})
	}
}
