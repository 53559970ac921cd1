package endpoints

import (
	_ "embed"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
)

// registry.json is regenerated by `go run ./codegen`; see codegen/overlays.yaml
// for the manual entries layered over the upstream manifest.
//
//go:embed registry.json
var registryJSON []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// registryDoc mirrors the on-disk shape of registry.json.
type registryDoc struct {
	Version  string `json:"version"`
	Source   string `json:"source"`
	Services map[string]struct {
		Partitions map[string]Record `json:"partitions"`
	} `json:"services"`
}

// Default returns the Registry built from the embedded catalog. The embedded
// asset is validated at build-generation time, so a parse failure here means
// the asset was hand-edited; Default panics rather than returning a registry
// with silent gaps.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(registryJSON)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("endpoints: embedded registry is invalid: %v", defaultErr))
	}
	return defaultRegistry
}

// Load parses a catalog document and checks it against the declared
// identifiers: every identifier must have at least one partition record.
// Use Load directly for alternate catalog data in tests or tooling.
func Load(data []byte) (*Registry, error) {
	var doc registryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	if len(doc.Services) == 0 {
		return nil, fmt.Errorf("registry declares no services")
	}

	services := make(map[string]map[PartitionKey]Record, len(doc.Services))
	for key, entry := range doc.Services {
		if len(entry.Partitions) == 0 {
			return nil, fmt.Errorf("registry entry %q has no partition records", key)
		}
		records := make(map[PartitionKey]Record, len(entry.Partitions))
		for partition, record := range entry.Partitions {
			if record.Hostname == "" || record.Principal == "" || record.Arn == "" {
				return nil, fmt.Errorf("registry entry %q partition %q is missing template fields", key, partition)
			}
			records[PartitionKey(partition)] = record
		}
		services[key] = records
	}

	// Every declared identifier must resolve to an entry in the data.
	for id, key := range serviceKeys {
		if _, ok := services[key]; !ok {
			return nil, fmt.Errorf("identifier %s maps to key %q with no registry entry", id, key)
		}
	}

	return &Registry{version: doc.Version, services: services}, nil
}
