package body

import (
	"encoding/json"
	"strings"

	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/yamlutil"
)

const VNFFGDTemplateUnavailable = "Unable to display VNFFGD template!"

type VNFFGDCreateRequest struct {
	Name         string
	Description  string
	TenantID     string
	Template     string
	TemplateFile string
}

func BuildVNFFGDCreate(req VNFFGDCreateRequest) (resource.Body, error) {
	hasInline := req.Template != ""
	hasFile := strings.TrimSpace(req.TemplateFile) != ""

	var (
		template map[string]any
		err      error
	)
	switch {
	case hasInline && hasFile:
		return resource.Body{}, validationError("flags --vnffgd and --vnffgd-file are mutually exclusive", nil)
	case hasFile:
		template, err = yamlutil.LoadFile(req.TemplateFile)
	case hasInline:
		template, err = yamlutil.LoadString(req.Template)
	default:
		return resource.Body{}, validationError("one of --vnffgd or --vnffgd-file is required", nil)
	}
	if err != nil {
		return resource.Body{}, err
	}

	return resource.NewBody(resource.KindVNFFGD, resource.VNFFGDPayload{
		TenantID:    strings.TrimSpace(req.TenantID),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Template:    resource.VNFFGDTemplate{VNFFGD: template},
	}), nil
}

// ExtractVNFFGDTemplate reads the JSON encoded "attributes" field of a shown
// VNFFGD and returns its "vnffgd" entry. Every failure, and an empty or false
// entry, reports ok=false.
func ExtractVNFFGDTemplate(shown map[string]any) (any, bool) {
	raw, found := shown["attributes"]
	if !found {
		return nil, false
	}

	var attributes map[string]any
	switch typed := raw.(type) {
	case string:
		if err := json.Unmarshal([]byte(typed), &attributes); err != nil {
			return nil, false
		}
	case map[string]any:
		attributes = typed
	default:
		return nil, false
	}

	template, found := attributes["vnffgd"]
	if !found || isEmptyValue(template) {
		return nil, false
	}
	return template, true
}
