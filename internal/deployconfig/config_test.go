package deployconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/endpoints"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
partition: aws
region: us-east-1
accountId: "123456789012"
apiUrl: https://abc123.execute-api.us-east-1.amazonaws.com
storageBucket: asset-bucket
features:
  cognito: true
  search: cluster
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, endpoints.PartitionAWS, cfg.PartitionKey())
	assert.Equal(t, "us-east-1", cfg.Context().Region)
	assert.True(t, cfg.Features.Cognito)
	assert.Equal(t, vamsinfra.SearchCluster, cfg.Features.Search)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Partition: "aws", Region: "us-east-1", AccountID: "123456789012"}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing partition", func(c *Config) { c.Partition = "" }, "partition"},
		{"missing region", func(c *Config) { c.Region = "" }, "region"},
		{"short account", func(c *Config) { c.AccountID = "1234" }, "12-digit"},
		{"non-numeric account", func(c *Config) { c.AccountID = "12345678901a" }, "12-digit"},
		{"http api url", func(c *Config) { c.APIURL = "http://api.example.com" }, "https"},
		{"bad search mode", func(c *Config) { c.Features.Search = "cluster2" }, "features.search"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOrigins(t *testing.T) {
	cfg := Config{
		Partition: "aws",
		Region:    "us-east-1",
		AccountID: "123456789012",
		APIURL:    "https://api.example.com",
		Features:  vamsinfra.Features{Cognito: true, LocationService: true},
	}
	origins, err := cfg.Origins(endpoints.Default())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", origins.API)
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com", origins.Storage)
	assert.Equal(t, "https://cognito-idp.us-east-1.amazonaws.com", origins.CognitoIdp)
	assert.Equal(t, "https://cognito-identity.us-east-1.amazonaws.com", origins.CognitoIdentity)
	assert.Equal(t, "https://geo.us-east-1.amazonaws.com", origins.Location)
}

func TestOrigins_DisabledFeaturesNotResolved(t *testing.T) {
	// The mapping service does not exist in GovCloud; with the feature off
	// the origin bundle must still resolve.
	cfg := Config{Partition: "aws-us-gov", Region: "us-gov-west-1", AccountID: "123456789012"}
	origins, err := cfg.Origins(endpoints.Default())
	require.NoError(t, err)
	assert.Empty(t, origins.Location)

	cfg.Features.LocationService = true
	_, err = cfg.Origins(endpoints.Default())
	require.Error(t, err)
}

func TestAccountRootArn(t *testing.T) {
	cfg := Config{Partition: "aws", Region: "us-east-1", AccountID: "123456789012"}
	arn, err := cfg.AccountRootArn(endpoints.Default())
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:root", arn)
}
