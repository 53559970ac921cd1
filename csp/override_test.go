package csp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverride_ValidEntries(t *testing.T) {
	override, warnings := ParseOverride([]byte(`{
		"scriptSrc": ["https://cdn.example.com", "'self'"],
		"connectSrc": ["https://api.example.com"]
	}`))
	require.NotNil(t, override)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"https://cdn.example.com", "'self'"}, override.Sources[DirectiveScriptSrc])
	assert.Equal(t, []string{"https://api.example.com"}, override.Sources[DirectiveConnectSrc])
}

func TestParseOverride_DropsInvalidEntries(t *testing.T) {
	override, warnings := ParseOverride([]byte(`{
		"scriptSrc": ["https://cdn.example.com", 42, "  "],
		"fontSrc": "not-an-array",
		"bogusKey": ["x"]
	}`))
	require.NotNil(t, override)

	// The valid token survives; everything else warns.
	assert.Equal(t, []string{"https://cdn.example.com"}, override.Sources[DirectiveScriptSrc])
	assert.NotContains(t, override.Sources, DirectiveFontSrc)
	assert.Len(t, warnings, 4)
}

func TestParseOverride_MalformedJSON(t *testing.T) {
	override, warnings := ParseOverride([]byte(`{"scriptSrc": [`))
	assert.Nil(t, override)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "baseline")
}

func TestParseOverride_WrongRootShape(t *testing.T) {
	override, warnings := ParseOverride([]byte(`["https://cdn.example.com"]`))
	assert.Nil(t, override)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "baseline")
}

func TestParseOverride_EmptyObject(t *testing.T) {
	override, warnings := ParseOverride([]byte(`{}`))
	assert.Nil(t, override)
	assert.Empty(t, warnings)
}

func TestLoadOverride_MissingFile(t *testing.T) {
	override, warnings := LoadOverride(filepath.Join(t.TempDir(), "absent.json"))
	assert.Nil(t, override)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "baseline")
}

func TestLoadOverride_EmptyPath(t *testing.T) {
	override, warnings := LoadOverride("")
	assert.Nil(t, override)
	assert.Empty(t, warnings)
}

func TestLoadOverride_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"imgSrc": ["https://tiles.example.com"]}`), 0644))

	override, warnings := LoadOverride(path)
	require.NotNil(t, override)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"https://tiles.example.com"}, override.Sources[DirectiveImgSrc])
}
