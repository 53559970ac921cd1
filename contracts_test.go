package vamsinfra

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMode_Valid(t *testing.T) {
	tests := []struct {
		name  string
		mode  SearchMode
		valid bool
	}{
		{name: "zero value", mode: "", valid: true},
		{name: "none", mode: SearchNone, valid: true},
		{name: "cluster", mode: SearchCluster, valid: true},
		{name: "serverless", mode: SearchServerless, valid: true},
		{name: "unknown", mode: "full-text", valid: false},
		{name: "wrong case", mode: "Cluster", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.Valid())
		})
	}
}

func TestFeatures_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Features{Cognito: true, Search: SearchServerless})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cognito": true,
		"allowUnsafeEval": false,
		"locationService": false,
		"cloudFront": false,
		"search": "serverless"
	}`, string(data))

	// Optional fields stay out of the document when unset.
	data, err = json.Marshal(Features{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "authDomain")
	assert.NotContains(t, string(data), "search")
}

func TestOrigins_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Origins{
		API:     "https://api.example.com",
		Storage: "https://s3.us-east-1.amazonaws.com",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"api": "https://api.example.com",
		"storage": "https://s3.us-east-1.amazonaws.com"
	}`, string(data))
}
