package csp

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// overrideKeys maps the override file's JSON keys to directive names. Only
// the open directives are listed; the locked directives cannot be overridden.
var overrideKeys = map[string]string{
	"connectSrc": DirectiveConnectSrc,
	"scriptSrc":  DirectiveScriptSrc,
	"workerSrc":  DirectiveWorkerSrc,
	"imgSrc":     DirectiveImgSrc,
	"mediaSrc":   DirectiveMediaSrc,
	"fontSrc":    DirectiveFontSrc,
	"styleSrc":   DirectiveStyleSrc,
}

// overrideSchema gates the document shape: the override must be a JSON
// object. Entry-level problems inside the object are recovered per entry,
// not rejected wholesale.
const overrideSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object"
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
)

func loadSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("override.schema.json", strings.NewReader(overrideSchema)); err != nil {
			panic(fmt.Sprintf("csp: compiling override schema: %v", err))
		}
		compiledSchema = compiler.MustCompile("override.schema.json")
	})
	return compiledSchema
}

// Override holds validated extra source tokens per directive name.
type Override struct {
	Sources map[string][]string
}

// LoadOverride reads an optional override file. Every failure mode is
// non-fatal: a missing, unreadable, malformed, or wrong-shaped file yields a
// nil Override plus warnings, and the caller proceeds with baselines only.
// Entries inside a well-formed file are validated individually; invalid ones
// are dropped with a warning while the rest still apply.
func LoadOverride(path string) (*Override, []string) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("csp override: %v, using baseline directives", err)}
	}
	return ParseOverride(data)
}

// ParseOverride validates and filters raw override content.
func ParseOverride(data []byte) (*Override, []string) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, []string{fmt.Sprintf("csp override: invalid JSON: %v, using baseline directives", err)}
	}
	if err := loadSchema().Validate(doc); err != nil {
		return nil, []string{fmt.Sprintf("csp override: %v, using baseline directives", err)}
	}

	entries := doc.(map[string]any)
	override := &Override{Sources: make(map[string][]string, len(entries))}
	var warnings []string

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := entries[key]
		directive, ok := overrideKeys[key]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("csp override: unknown directive key %q, skipping", key))
			continue
		}
		list, ok := value.([]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("csp override: %s is not an array, skipping", key))
			continue
		}
		for _, item := range list {
			token, ok := item.(string)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("csp override: dropping non-string %s entry %v", key, item))
				continue
			}
			if strings.TrimSpace(token) == "" {
				warnings = append(warnings, fmt.Sprintf("csp override: dropping blank %s entry", key))
				continue
			}
			override.Sources[directive] = append(override.Sources[directive], token)
		}
	}

	if len(override.Sources) == 0 && len(warnings) == 0 {
		return nil, nil
	}
	return override, warnings
}
