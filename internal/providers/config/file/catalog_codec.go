package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/yamlutil"
	"github.com/spf13/viper"
)

// loadCatalog reports found=false when the catalog file does not exist.
func (m *FileContextService) loadCatalog() (config.ContextCatalog, bool, error) {
	if _, err := os.Stat(m.contextCatalogPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.ContextCatalog{}, false, nil
		}
		return config.ContextCatalog{}, false, validationError(
			fmt.Sprintf("context catalog %q could not be read", m.contextCatalogPath),
			err,
		)
	}

	v := viper.New()
	v.SetConfigFile(m.contextCatalogPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return config.ContextCatalog{}, false, faults.NewTypedError(
			faults.ParseError,
			fmt.Sprintf("context catalog %q is not valid YAML", m.contextCatalogPath),
			err,
		)
	}

	var contextCatalog config.ContextCatalog
	if err := v.Unmarshal(&contextCatalog); err != nil {
		return config.ContextCatalog{}, false, faults.NewTypedError(
			faults.ParseError,
			fmt.Sprintf("context catalog %q has an invalid shape", m.contextCatalogPath),
			err,
		)
	}
	if err := validateCatalog(contextCatalog); err != nil {
		return config.ContextCatalog{}, false, err
	}
	return contextCatalog, true, nil
}

func (m *FileContextService) saveCatalog(contextCatalog config.ContextCatalog) error {
	if err := validateCatalog(contextCatalog); err != nil {
		return err
	}

	encoded, err := yamlutil.MarshalWithIndent(contextCatalog, 2)
	if err != nil {
		return faults.NewTypedError(faults.InternalError, "failed to encode context catalog", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.contextCatalogPath), 0o700); err != nil {
		return faults.NewTypedError(faults.InternalError, "failed to create context catalog directory", err)
	}
	if err := os.WriteFile(m.contextCatalogPath, encoded, 0o600); err != nil {
		return faults.NewTypedError(
			faults.InternalError,
			fmt.Sprintf("failed to write context catalog %q", m.contextCatalogPath),
			err,
		)
	}
	return nil
}
