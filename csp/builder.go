// Package csp assembles the Content-Security-Policy header attached to the
// web distribution. Seven directives start from fixed baselines, grow with
// feature-driven appends, and finally merge an optional operator-supplied
// override; four locked-down directives are always 'none'. Output is
// deterministic so repeated synthesis never produces spurious template
// diffs.
package csp

import (
	"fmt"
	"strings"

	vamsinfra "github.com/openvams/vams-infra-go"
)

// bootstrapScriptHash pins the single inline bootstrap script the web
// frontend ships in index.html. Regenerate when that script changes.
const bootstrapScriptHash = "'sha256-wkAU1AW/h8YFx0XlzvpTllAKnFEO2tw8aKErs5a1LsU='"

// Result carries the composed header and any non-fatal findings from the
// override merge.
type Result struct {
	// Header is the complete Content-Security-Policy value.
	Header string
	// Warnings lists dropped override entries. Never fatal.
	Warnings []string
}

// Build composes the CSP header for a deployment. Baselines are extended in
// a fixed order: managed auth endpoints when Cognito is enabled, then the
// external auth domain, then 'unsafe-eval' when explicitly allowed, then the
// mapping endpoint when the location feature is on. The override, when
// present, is merged last with first-seen-wins de-duplication.
func Build(origins vamsinfra.Origins, features vamsinfra.Features, override *Override) Result {
	directives := baseline(origins)

	connect := directives[DirectiveConnectSrc]
	if features.Cognito {
		if origins.CognitoIdp != "" {
			connect.add(origins.CognitoIdp)
		}
		if origins.CognitoIdentity != "" {
			connect.add(origins.CognitoIdentity)
		}
	}
	if features.AuthDomain != "" {
		connect.add(features.AuthDomain)
	}
	if features.AllowUnsafeEval {
		directives[DirectiveScriptSrc].add("'unsafe-eval'")
	}
	if features.LocationService && origins.Location != "" {
		connect.add(origins.Location)
	}

	var warnings []string
	if override != nil {
		warnings = merge(directives, override)
	}

	return Result{Header: serialize(directives), Warnings: warnings}
}

// baseline returns the per-directive starting lists.
func baseline(origins vamsinfra.Origins) map[string]*sourceList {
	return map[string]*sourceList{
		DirectiveConnectSrc: newSourceList("'self'", "blob:", origins.API, origins.Storage),
		DirectiveScriptSrc:  newSourceList("'self'", bootstrapScriptHash),
		DirectiveWorkerSrc:  newSourceList("'self'", "blob:"),
		DirectiveImgSrc:     newSourceList("'self'", "blob:", "data:"),
		DirectiveMediaSrc:   newSourceList("'self'", "blob:", "data:"),
		DirectiveFontSrc:    newSourceList("'self'", "data:"),
		DirectiveStyleSrc:   newSourceList("'self'", "'unsafe-inline'"),
	}
}

// merge appends override tokens per directive. Blank tokens are dropped with
// a warning; tokens already present are silently skipped.
func merge(directives map[string]*sourceList, override *Override) []string {
	var warnings []string
	for _, name := range overridableDirectives {
		for _, token := range override.Sources[name] {
			if strings.TrimSpace(token) == "" {
				warnings = append(warnings, fmt.Sprintf("csp override: dropping blank %s token", name))
				continue
			}
			directives[name].add(token)
		}
	}
	return warnings
}

// serialize joins the directives into a single header value. Locked
// directives come first, then the open directives in declaration order.
func serialize(directives map[string]*sourceList) string {
	clauses := make([]string, 0, len(fixedDirectives)+len(overridableDirectives))
	for _, name := range fixedDirectives {
		clauses = append(clauses, name+" 'none'")
	}
	for _, name := range overridableDirectives {
		clauses = append(clauses, name+" "+strings.Join(directives[name].tokens, " "))
	}
	return strings.Join(clauses, "; ")
}
