// Package deployconfig loads and validates the YAML deployment configuration
// consumed by the vams-infra CLI: the target partition and region, the
// deploying account, and the feature flags that drive policy composition.
package deployconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/endpoints"
)

// Config is the deployment configuration document.
type Config struct {
	// Partition is the deployment partition key (e.g. "aws", "aws-us-gov").
	Partition string `yaml:"partition"`
	// Region is the deployment region.
	Region string `yaml:"region"`
	// AccountID is the 12-digit deploying account.
	AccountID string `yaml:"accountId"`
	// UseFips selects FIPS endpoint variants throughout.
	UseFips bool `yaml:"useFips"`
	// APIURL is the deployed API origin included in connect-src.
	APIURL string `yaml:"apiUrl"`
	// StorageBucket is the asset bucket name; its origin and ARN are derived
	// from the endpoint catalog.
	StorageBucket string `yaml:"storageBucket"`
	// CSPOverride is an optional path to a CSP override file.
	CSPOverride string `yaml:"cspOverride,omitempty"`
	// Features holds the deployment feature flags.
	Features vamsinfra.Features `yaml:"features"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and value shapes.
func (c *Config) Validate() error {
	if c.Partition == "" {
		return fmt.Errorf("partition is required")
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if len(c.AccountID) != 12 || strings.Trim(c.AccountID, "0123456789") != "" {
		return fmt.Errorf("accountId must be a 12-digit account number, got %q", c.AccountID)
	}
	if c.APIURL != "" && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("apiUrl must be an https origin, got %q", c.APIURL)
	}
	if !c.Features.Search.Valid() {
		return fmt.Errorf("features.search must be one of none, cluster, serverless; got %q", c.Features.Search)
	}
	return nil
}

// PartitionKey returns the typed partition key.
func (c *Config) PartitionKey() endpoints.PartitionKey {
	return endpoints.PartitionKey(c.Partition)
}

// Context returns the endpoint-resolution context for this deployment.
func (c *Config) Context() endpoints.Context {
	return endpoints.Context{
		Region:    c.Region,
		AccountID: c.AccountID,
		UseFips:   c.UseFips,
	}
}

// Origins resolves the origin bundle the CSP builder consumes. Endpoints for
// disabled features are left empty rather than resolved, so a partition
// without, say, the mapping service only fails when that feature is on.
func (c *Config) Origins(reg *endpoints.Registry) (vamsinfra.Origins, error) {
	origins := vamsinfra.Origins{API: c.APIURL}

	storage, err := reg.Resolve(endpoints.ServiceS3, c.PartitionKey(), c.Context())
	if err != nil {
		return vamsinfra.Origins{}, fmt.Errorf("resolving storage origin: %w", err)
	}
	origins.Storage = "https://" + storage.Hostname

	if c.Features.Cognito {
		idp, err := reg.Resolve(endpoints.ServiceCognitoIdp, c.PartitionKey(), c.Context())
		if err != nil {
			return vamsinfra.Origins{}, fmt.Errorf("resolving auth origin: %w", err)
		}
		identity, err := reg.Resolve(endpoints.ServiceCognitoIdentity, c.PartitionKey(), c.Context())
		if err != nil {
			return vamsinfra.Origins{}, fmt.Errorf("resolving identity origin: %w", err)
		}
		origins.CognitoIdp = "https://" + idp.Hostname
		origins.CognitoIdentity = "https://" + identity.Hostname
	}

	if c.Features.LocationService {
		location, err := reg.Resolve(endpoints.ServiceGeo, c.PartitionKey(), c.Context())
		if err != nil {
			return vamsinfra.Origins{}, fmt.Errorf("resolving mapping origin: %w", err)
		}
		origins.Location = "https://" + location.Hostname
	}

	return origins, nil
}

// AccountRootArn returns the deploying account's root principal ARN for the
// active partition.
func (c *Config) AccountRootArn(reg *endpoints.Registry) (string, error) {
	return reg.BuildArn(endpoints.ServiceIam, c.PartitionKey(), c.Context(), "root", "")
}
