package csp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vamsinfra "github.com/openvams/vams-infra-go"
)

var testOrigins = vamsinfra.Origins{
	API:             "https://abc123.execute-api.us-east-1.amazonaws.com",
	Storage:         "https://asset-bucket.s3.us-east-1.amazonaws.com",
	CognitoIdp:      "https://cognito-idp.us-east-1.amazonaws.com",
	CognitoIdentity: "https://cognito-identity.us-east-1.amazonaws.com",
	Location:        "https://maps.geo.us-east-1.amazonaws.com",
}

// directive extracts one directive clause from a header.
func directive(t *testing.T, header, name string) string {
	t.Helper()
	for _, clause := range strings.Split(header, "; ") {
		if strings.HasPrefix(clause, name+" ") {
			return strings.TrimPrefix(clause, name+" ")
		}
	}
	t.Fatalf("directive %s not found in %q", name, header)
	return ""
}

func TestBuild_BaselineOnly(t *testing.T) {
	result := Build(testOrigins, vamsinfra.Features{}, nil)
	assert.Empty(t, result.Warnings)

	connect := directive(t, result.Header, DirectiveConnectSrc)
	assert.Equal(t, "'self' blob: "+testOrigins.API+" "+testOrigins.Storage, connect)

	script := directive(t, result.Header, DirectiveScriptSrc)
	assert.Equal(t, "'self' "+bootstrapScriptHash, script)
	assert.NotContains(t, script, "'unsafe-eval'")
}

func TestBuild_FeatureAppendsInOrder(t *testing.T) {
	features := vamsinfra.Features{
		Cognito:         true,
		AuthDomain:      "https://auth.example.com",
		AllowUnsafeEval: true,
		LocationService: true,
	}
	result := Build(testOrigins, features, nil)

	connect := directive(t, result.Header, DirectiveConnectSrc)
	tokens := strings.Fields(connect)
	assert.Equal(t, []string{
		"'self'",
		"blob:",
		testOrigins.API,
		testOrigins.Storage,
		testOrigins.CognitoIdp,
		testOrigins.CognitoIdentity,
		"https://auth.example.com",
		testOrigins.Location,
	}, tokens)

	assert.Contains(t, directive(t, result.Header, DirectiveScriptSrc), "'unsafe-eval'")
}

func TestBuild_DisabledFeaturesLeaveNoTrace(t *testing.T) {
	result := Build(testOrigins, vamsinfra.Features{}, nil)
	assert.NotContains(t, result.Header, testOrigins.CognitoIdp)
	assert.NotContains(t, result.Header, testOrigins.Location)
	assert.NotContains(t, result.Header, "'unsafe-eval'")
}

func TestBuild_Deterministic(t *testing.T) {
	features := vamsinfra.Features{Cognito: true, LocationService: true}
	override := &Override{Sources: map[string][]string{
		DirectiveScriptSrc: {"https://cdn.example.com"},
		DirectiveFontSrc:   {"https://fonts.example.com"},
	}}

	first := Build(testOrigins, features, override)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Header, Build(testOrigins, features, override).Header)
	}
}

func TestBuild_OverrideAppendsAndDeduplicates(t *testing.T) {
	override := &Override{Sources: map[string][]string{
		DirectiveScriptSrc: {"https://cdn.example.com", "'self'"},
	}}
	result := Build(testOrigins, vamsinfra.Features{}, override)

	script := directive(t, result.Header, DirectiveScriptSrc)
	assert.Equal(t, "'self' "+bootstrapScriptHash+" https://cdn.example.com", script)
	assert.Equal(t, 1, strings.Count(script, "'self'"))
}

func TestBuild_OverrideBlankTokenDropped(t *testing.T) {
	override := &Override{Sources: map[string][]string{
		DirectiveFontSrc: {"", "https://fonts.example.com"},
	}}
	result := Build(testOrigins, vamsinfra.Features{}, override)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "blank")
	assert.Contains(t, directive(t, result.Header, DirectiveFontSrc), "https://fonts.example.com")
}

func TestBuild_LockedDirectivesImmutable(t *testing.T) {
	override := &Override{Sources: map[string][]string{
		DirectiveDefaultSrc:     {"https://evil.example.com"},
		DirectiveBaseURI:        {"https://evil.example.com"},
		DirectiveObjectSrc:      {"https://evil.example.com"},
		DirectiveFrameAncestors: {"https://evil.example.com"},
	}}
	result := Build(testOrigins, vamsinfra.Features{AllowUnsafeEval: true}, override)

	assert.Equal(t, "'none'", directive(t, result.Header, DirectiveDefaultSrc))
	assert.Equal(t, "'none'", directive(t, result.Header, DirectiveBaseURI))
	assert.Equal(t, "'none'", directive(t, result.Header, DirectiveObjectSrc))
	assert.Equal(t, "'none'", directive(t, result.Header, DirectiveFrameAncestors))
	assert.NotContains(t, result.Header, "evil.example.com")
}

func TestBuild_HeaderShape(t *testing.T) {
	result := Build(testOrigins, vamsinfra.Features{}, nil)

	clauses := strings.Split(result.Header, "; ")
	assert.Len(t, clauses, 11)
	assert.True(t, strings.HasPrefix(result.Header, "default-src 'none'; base-uri 'none'"), result.Header)
	// no trailing separator
	assert.False(t, strings.HasSuffix(result.Header, ";"))
}
