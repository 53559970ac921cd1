package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvams/vams-infra-go/endpoints"
)

func TestGenerate_DOT(t *testing.T) {
	g := &Generator{}
	out, err := g.GenerateString(endpoints.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "S3")
	assert.Contains(t, out, "aws-us-gov")
}

func TestGenerate_Mermaid(t *testing.T) {
	g := &Generator{Format: FormatMermaid}
	out, err := g.GenerateString(endpoints.Default())
	require.NoError(t, err)
	assert.Contains(t, out, "graph")
	assert.NotContains(t, out, "digraph")
}

func TestGenerate_PartitionFilter(t *testing.T) {
	g := &Generator{Partition: endpoints.PartitionISO}
	out, err := g.GenerateString(endpoints.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "aws-iso")
	// geo exists only in the commercial partition
	assert.NotContains(t, out, "GEO")
}

func TestGenerate_Deterministic(t *testing.T) {
	g := &Generator{}
	first, err := g.GenerateString(endpoints.Default())
	require.NoError(t, err)
	second, err := g.GenerateString(endpoints.Default())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
