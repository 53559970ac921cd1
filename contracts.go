// Package vamsinfra provides the deployment-core contracts for the VAMS
// infrastructure tooling: service endpoint resolution across provider
// partitions and security-policy composition (CSP headers, IAM statements).
//
// The endpoint catalog lives in the endpoints package as a generated data
// asset; policy and CSP composition live in the policy and csp packages. The
// vams-infra CLI wires them together from a YAML deployment configuration:
//
//	vams-infra resolve S3 --partition aws --region us-east-1
//	vams-infra csp --config deploy.yaml
package vamsinfra

// SearchMode selects which managed-search variant a deployment provisions.
type SearchMode string

const (
	// SearchNone disables the search subsystem.
	SearchNone SearchMode = "none"
	// SearchCluster provisions the managed search cluster.
	SearchCluster SearchMode = "cluster"
	// SearchServerless provisions the serverless search collection.
	SearchServerless SearchMode = "serverless"
)

// Valid reports whether m is one of the declared search modes.
// The zero value is treated as SearchNone.
func (m SearchMode) Valid() bool {
	switch m {
	case "", SearchNone, SearchCluster, SearchServerless:
		return true
	}
	return false
}

// Features holds the deployment feature flags that drive conditional policy
// and CSP composition. All fields default to the most restrictive setting.
type Features struct {
	// Cognito enables the managed auth provider; its endpoints are added to
	// connect-src when set.
	Cognito bool `json:"cognito" yaml:"cognito"`
	// AuthDomain is an externally supplied authentication domain appended to
	// connect-src when non-empty (e.g. a SAML or OIDC federation endpoint).
	AuthDomain string `json:"authDomain,omitempty" yaml:"authDomain,omitempty"`
	// AllowUnsafeEval adds 'unsafe-eval' to script-src. Required by some
	// visualizer runtimes; off unless explicitly requested.
	AllowUnsafeEval bool `json:"allowUnsafeEval" yaml:"allowUnsafeEval"`
	// LocationService enables the mapping subsystem and its endpoint in
	// connect-src.
	LocationService bool `json:"locationService" yaml:"locationService"`
	// CloudFront grants the content-delivery service principal access to the
	// deployment KMS key.
	CloudFront bool `json:"cloudFront" yaml:"cloudFront"`
	// Search selects the managed-search variant whose service principal is
	// granted KMS key access.
	Search SearchMode `json:"search,omitempty" yaml:"search,omitempty"`
}

// Origins bundles the resolved origins the CSP builder consumes. Each value
// is a complete origin (scheme plus host), produced by resolving the
// corresponding service endpoint for the active partition and region.
type Origins struct {
	// API is the API gateway origin for the deployment.
	API string `json:"api"`
	// Storage is the object-storage origin assets are served from.
	Storage string `json:"storage"`
	// CognitoIdp is the managed auth provider origin; used only when
	// Features.Cognito is set.
	CognitoIdp string `json:"cognitoIdp,omitempty"`
	// CognitoIdentity is the identity-pool origin; used only when
	// Features.Cognito is set.
	CognitoIdentity string `json:"cognitoIdentity,omitempty"`
	// Location is the mapping-service origin; used only when
	// Features.LocationService is set.
	Location string `json:"location,omitempty"`
}

// ResolveResult is the JSON output from `vams-infra resolve`.
type ResolveResult struct {
	Service   string `json:"service"`
	Partition string `json:"partition"`
	Region    string `json:"region"`
	Hostname  string `json:"hostname"`
	Principal string `json:"principal"`
	Arn       string `json:"arn,omitempty"`
}

// CSPResult is the JSON output from `vams-infra csp`.
type CSPResult struct {
	Header   string   `json:"header"`
	Warnings []string `json:"warnings,omitempty"`
}

// ListResult is the JSON output from `vams-infra list`.
type ListResult struct {
	Services []ListService `json:"services"`
}

// ListService is a single catalog entry in the list output.
type ListService struct {
	Name       string   `json:"name"`
	Key        string   `json:"key"`
	Partitions []string `json:"partitions"`
}
