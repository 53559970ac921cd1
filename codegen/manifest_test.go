package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `{
  "version": 3,
  "partitions": [
    {
      "partition": "aws",
      "dnsSuffix": "amazonaws.com",
      "services": {
        "lambda": {"endpoints": {"us-east-1": {}, "fips-us-east-1": {}}},
        "cloudfront": {"endpoints": {"aws-global": {}}},
        "kms": {"endpoints": {"us-east-1": {}}}
      }
    },
    {
      "partition": "aws-cn",
      "dnsSuffix": "amazonaws.com.cn",
      "services": {
        "lambda": {"endpoints": {"cn-north-1": {}}}
      }
    },
    {
      "partition": "aws-iso",
      "dnsSuffix": "c2s.ic.gov",
      "services": {
        "lambda": {"endpoints": {"us-iso-east-1": {}}}
      }
    }
  ]
}`

func TestParseManifest(t *testing.T) {
	m, err := parseManifest([]byte(testManifest))
	require.NoError(t, err)
	require.Len(t, m.Partitions, 3)
	assert.Equal(t, "aws", m.Partitions[0].Partition)
	assert.Equal(t, "amazonaws.com.cn", m.Partitions[1].DNSSuffix)
	assert.Contains(t, m.Partitions[0].Services, "lambda")
}

func TestParseManifestRejectsEmpty(t *testing.T) {
	_, err := parseManifest([]byte(`{"version": 3, "partitions": []}`))
	assert.Error(t, err)

	_, err = parseManifest([]byte(`not json`))
	assert.Error(t, err)
}

func TestHasFips(t *testing.T) {
	m, err := parseManifest([]byte(testManifest))
	require.NoError(t, err)

	aws := m.Partitions[0]
	assert.True(t, aws.Services["lambda"].HasFips())
	assert.False(t, aws.Services["cloudfront"].HasFips())
	assert.False(t, m.Partitions[1].Services["lambda"].HasFips())
}
