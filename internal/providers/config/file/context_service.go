package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
)

var _ config.ContextService = (*FileContextService)(nil)

type FileContextService struct {
	contextCatalogPath string
}

// NewFileContextService reads the catalog at path. An empty path falls back
// to NFVCTL_CONTEXTS_FILE and then ~/.nfvctl/contexts.yaml.
func NewFileContextService(path string) (*FileContextService, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = DefaultCatalogPath()
	}

	expanded, err := expandHome(resolved)
	if err != nil {
		return nil, err
	}
	return &FileContextService{contextCatalogPath: expanded}, nil
}

func DefaultCatalogPath() string {
	if value, ok := lookupEnv(config.ContextFileEnvVar); ok {
		return value
	}
	return config.DefaultContextCatalogPath
}

func (m *FileContextService) Path() string {
	return m.contextCatalogPath
}

func (m *FileContextService) List(_ context.Context) ([]config.Context, error) {
	contextCatalog, _, err := m.loadCatalog()
	if err != nil {
		return nil, err
	}

	contexts := make([]config.Context, len(contextCatalog.Contexts))
	copy(contexts, contextCatalog.Contexts)
	return contexts, nil
}

func (m *FileContextService) GetCurrent(_ context.Context) (config.Context, error) {
	contextCatalog, found, err := m.loadCatalog()
	if err != nil {
		return config.Context{}, err
	}
	if !found {
		return config.Context{}, notFoundError(fmt.Sprintf("context catalog %q not found", m.contextCatalogPath))
	}
	if contextCatalog.CurrentCtx == "" {
		return config.Context{}, notFoundError("current context not set")
	}

	return findContext(contextCatalog, contextCatalog.CurrentCtx)
}

func (m *FileContextService) SetCurrent(_ context.Context, name string) error {
	contextCatalog, found, err := m.loadCatalog()
	if err != nil {
		return err
	}
	if !found {
		return notFoundError(fmt.Sprintf("context catalog %q not found", m.contextCatalogPath))
	}
	if _, err := findContext(contextCatalog, name); err != nil {
		return err
	}

	contextCatalog.CurrentCtx = strings.TrimSpace(name)
	return m.saveCatalog(contextCatalog)
}

// ResolveContext picks the context named by the selection, NFVCTL_CONTEXT or
// the catalog's current-ctx, in that order, and applies NFVCTL_* overrides.
// Without a catalog file, NFVCTL_BASE_URL alone yields an ephemeral context.
func (m *FileContextService) ResolveContext(_ context.Context, selection config.ContextSelection) (config.Context, error) {
	contextCatalog, found, err := m.loadCatalog()
	if err != nil {
		return config.Context{}, err
	}

	effectiveName := strings.TrimSpace(selection.Name)
	if effectiveName == "" {
		effectiveName, _ = lookupEnv(config.ContextNameEnvVar)
	}
	if effectiveName == "" && found {
		effectiveName = contextCatalog.CurrentCtx
	}

	var resolved config.Context
	switch {
	case effectiveName != "" && found:
		resolved, err = findContext(contextCatalog, effectiveName)
		if err != nil {
			return config.Context{}, err
		}
	case effectiveName != "":
		return config.Context{}, notFoundError(
			fmt.Sprintf("context %q not found: catalog %q does not exist", effectiveName, m.contextCatalogPath),
		)
	default:
		if _, ok := lookupEnv(config.BaseURLEnvVar); !ok {
			return config.Context{}, validationError(
				fmt.Sprintf("no context selected: use --context, set %s or %s", config.ContextNameEnvVar, config.BaseURLEnvVar),
				nil,
			)
		}
		resolved = config.Context{Name: config.EnvContextName}
	}

	resolved = applyEnvOverrides(resolved)
	if err := validateContext(resolved); err != nil {
		return config.Context{}, err
	}
	return resolved, nil
}

func findContext(contextCatalog config.ContextCatalog, name string) (config.Context, error) {
	trimmed := strings.TrimSpace(name)
	for _, item := range contextCatalog.Contexts {
		if item.Name == trimmed {
			return item, nil
		}
	}
	return config.Context{}, notFoundError(fmt.Sprintf("context %q not found", trimmed))
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", validationError("unable to determine home directory", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func notFoundError(message string) error {
	return faults.NewTypedError(faults.NotFoundError, message, nil)
}
