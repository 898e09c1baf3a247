package body

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/resource"
)

const defaultVIMType = "openstack"

type VIMCreateRequest struct {
	Name        string
	Description string
	TenantID    string
	IsDefault   bool
	ConfigFile  string
}

type VIMUpdateRequest struct {
	TenantID   string
	IsDefault  bool
	ConfigFile string
}

func BuildVIMCreate(ctx context.Context, req VIMCreateRequest) (resource.Body, error) {
	if strings.TrimSpace(req.ConfigFile) == "" {
		return resource.Body{}, validationError("flag --config-file is required", nil)
	}
	document, _, err := loadOptionalFile(req.ConfigFile)
	if err != nil {
		return resource.Body{}, err
	}

	authURL, found, err := popString(document, "auth_url")
	if err != nil {
		return resource.Body{}, err
	}
	if !found {
		return resource.Body{}, clientError("Auth URL must be specified")
	}
	normalizedURL, err := validateAuthURL(authURL)
	if err != nil {
		return resource.Body{}, err
	}

	vimType, found, err := popString(document, "type")
	if err != nil {
		return resource.Body{}, err
	}
	if !found || strings.TrimSpace(vimType) == "" {
		vimType = defaultVIMType
	}

	payload := resource.VIMPayload{
		TenantID:    strings.TrimSpace(req.TenantID),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        vimType,
		AuthURL:     normalizedURL,
		IsDefault:   req.IsDefault,
	}
	if err := applyVIMCredentials(document, &payload); err != nil {
		return resource.Body{}, err
	}
	logIgnoredKeys(ctx, document)

	return resource.NewBody(resource.KindVIM, payload), nil
}

func BuildVIMUpdate(ctx context.Context, req VIMUpdateRequest) (resource.Body, error) {
	payload := resource.VIMPayload{
		TenantID:  strings.TrimSpace(req.TenantID),
		IsDefault: req.IsDefault,
	}

	document, loaded, err := loadOptionalFile(req.ConfigFile)
	if err != nil {
		return resource.Body{}, err
	}
	if loaded {
		if _, present := document["auth_url"]; present {
			return resource.Body{}, clientError("Auth URL cannot be updated")
		}
		if err := applyVIMCredentials(document, &payload); err != nil {
			return resource.Body{}, err
		}
		logIgnoredKeys(ctx, document)
	}

	return resource.NewBody(resource.KindVIM, payload), nil
}

// applyVIMCredentials consumes the project and user keys of a VIM config
// document into vim_project and auth_cred.
func applyVIMCredentials(document map[string]any, payload *resource.VIMPayload) error {
	var project resource.VIMProject
	var cred resource.VIMAuthCred

	fields := []struct {
		key    string
		target *string
	}{
		{key: "project_id", target: &project.ID},
		{key: "project_name", target: &project.Name},
		{key: "project_domain_name", target: &project.ProjectDomainName},
		{key: "username", target: &cred.Username},
		{key: "password", target: &cred.Password},
		{key: "user_id", target: &cred.UserID},
		{key: "user_domain_name", target: &cred.UserDomainName},
	}
	for _, field := range fields {
		value, err := popStringOrEmpty(document, field.key)
		if err != nil {
			return err
		}
		*field.target = value
	}

	if project.ID == "" && project.Name == "" {
		return clientError("Project Id or name must be specified")
	}

	payload.VIMProject = &project
	payload.AuthCred = &cred
	return nil
}

// validateAuthURL requires scheme, host and an explicit port.
func validateAuthURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" || parsed.Hostname() == "" {
		return "", validationError("Invalid URL", nil)
	}
	port, err := strconv.Atoi(parsed.Port())
	if err != nil || port <= 0 {
		return "", validationError("Invalid URL", nil)
	}
	return parsed.String(), nil
}

func logIgnoredKeys(ctx context.Context, document map[string]any) {
	for key := range document {
		debugctx.Printf(ctx, "vim config key %q is not sent to the server", key)
	}
}
