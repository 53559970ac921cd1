package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Manifest is the subset of the upstream endpoint model the generator
// consumes.
type Manifest struct {
	Version    int                 `json:"version"`
	Partitions []ManifestPartition `json:"partitions"`
}

// ManifestPartition is one deployment realm in the manifest.
type ManifestPartition struct {
	Partition string                     `json:"partition"`
	DNSSuffix string                     `json:"dnsSuffix"`
	Services  map[string]ManifestService `json:"services"`
}

// ManifestService lists the concrete endpoints a partition publishes for a
// service. The generator only cares about existence and whether any FIPS
// variant is published; per-region detail is collapsed into templates.
type ManifestService struct {
	Endpoints map[string]json.RawMessage `json:"endpoints"`
}

// HasFips reports whether any published endpoint is a FIPS variant.
func (s ManifestService) HasFips() bool {
	for name := range s.Endpoints {
		if strings.Contains(name, "fips") {
			return true
		}
	}
	return false
}

// fetchManifest reads the manifest from a URL or local file.
func fetchManifest(source string) (*Manifest, error) {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: 60 * time.Second}
		resp, err := client.Get(source)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("manifest fetch returned %s", resp.Status)
		}
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, err
		}
	}

	return parseManifest(data)
}

func parseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Partitions) == 0 {
		return nil, fmt.Errorf("manifest declares no partitions")
	}
	return &m, nil
}
