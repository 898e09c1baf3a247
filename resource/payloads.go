package resource

// Optional string fields use omitempty: an unset flag never reaches the wire
// as null.

type VIMPayload struct {
	TenantID    string       `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string       `json:"type,omitempty" yaml:"type,omitempty"`
	AuthURL     string       `json:"auth_url,omitempty" yaml:"auth_url,omitempty"`
	IsDefault   bool         `json:"is_default" yaml:"is_default"`
	VIMProject  *VIMProject  `json:"vim_project,omitempty" yaml:"vim_project,omitempty"`
	AuthCred    *VIMAuthCred `json:"auth_cred,omitempty" yaml:"auth_cred,omitempty"`
}

type VIMProject struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	ProjectDomainName string `json:"project_domain_name" yaml:"project_domain_name"`
}

type VIMAuthCred struct {
	Username       string `json:"username" yaml:"username"`
	Password       string `json:"password" yaml:"password"`
	UserID         string `json:"user_id" yaml:"user_id"`
	UserDomainName string `json:"user_domain_name" yaml:"user_domain_name"`
}

type VNFPayload struct {
	TenantID      string         `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	VNFDID        string         `json:"vnfd_id,omitempty" yaml:"vnfd_id,omitempty"`
	VIMID         string         `json:"vim_id,omitempty" yaml:"vim_id,omitempty"`
	PlacementAttr *PlacementAttr `json:"placement_attr,omitempty" yaml:"placement_attr,omitempty"`
	Attributes    *VNFAttributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type PlacementAttr struct {
	RegionName string `json:"region_name" yaml:"region_name"`
}

type VNFAttributes struct {
	Config      any            `json:"config,omitempty" yaml:"config,omitempty"`
	ParamValues map[string]any `json:"param_values,omitempty" yaml:"param_values,omitempty"`
}

type VNFFGPayload struct {
	TenantID    string            `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	VNFFGDID    string            `json:"vnffgd_id,omitempty" yaml:"vnffgd_id,omitempty"`
	Symmetrical string            `json:"symmetrical,omitempty" yaml:"symmetrical,omitempty"`
	VNFMapping  map[string]string `json:"vnf_mapping,omitempty" yaml:"vnf_mapping,omitempty"`
}

type VNFFGDPayload struct {
	TenantID    string         `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Template    VNFFGDTemplate `json:"template" yaml:"template"`
}

type VNFFGDTemplate struct {
	VNFFGD map[string]any `json:"vnffgd" yaml:"vnffgd"`
}

type ScalePayload struct {
	VNFID  string `json:"vnf_id,omitempty" yaml:"vnf_id,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`
}
