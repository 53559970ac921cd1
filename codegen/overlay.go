package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the versioned generator configuration layered over the upstream
// manifest: the curated service set, manual entries the manifest lacks, the
// rename table, and the ARN/hostname formats the manifest does not carry.
type Overlay struct {
	// Include is the curated set of canonical service keys emitted into the
	// catalog. Services outside this set are ignored even when the manifest
	// declares them.
	Include []string `yaml:"include"`
	// Renames maps a canonical key to the logical identifier it is exposed
	// under, where the mechanical UPPER_SNAKE form is not wanted.
	Renames map[string]string `yaml:"renames"`
	// Manual declares services absent from the manifest, with the partitions
	// they exist in. Records are derived from the standard template rules.
	Manual map[string]ManualEntry `yaml:"manual"`
	// ArnFormats overrides the default ARN template per canonical key. The
	// {partition} placeholder is expanded per partition.
	ArnFormats map[string]string `yaml:"arnFormats"`
	// Hostnames pins literal hostnames for services that are not regional,
	// keyed by canonical key then partition.
	Hostnames map[string]map[string]string `yaml:"hostnames"`
}

// ManualEntry is one manually injected service.
type ManualEntry struct {
	Partitions []string `yaml:"partitions"`
	// Fips marks partitions that publish a FIPS variant for the service.
	Fips []string `yaml:"fips,omitempty"`
}

// loadOverlay reads and validates the overlay file. Unlike the CSP override,
// the overlay is generator input and must be well-formed: any problem is
// fatal.
func loadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing overlay: %w", err)
	}
	if len(o.Include) == 0 {
		return nil, fmt.Errorf("overlay includes no services")
	}

	included := make(map[string]bool, len(o.Include))
	for _, key := range o.Include {
		if included[key] {
			return nil, fmt.Errorf("overlay includes %q twice", key)
		}
		included[key] = true
	}
	for key := range o.Manual {
		if !included[key] {
			return nil, fmt.Errorf("manual entry %q is not in the include list", key)
		}
		if len(o.Manual[key].Partitions) == 0 {
			return nil, fmt.Errorf("manual entry %q declares no partitions", key)
		}
	}
	for key := range o.Renames {
		if !included[key] {
			return nil, fmt.Errorf("rename for %q is not in the include list", key)
		}
	}

	return &o, nil
}

// logicalName returns the identifier a canonical key is exposed under.
func (o *Overlay) logicalName(key string) string {
	if name, ok := o.Renames[key]; ok {
		return name
	}
	return mechanicalName(key)
}
