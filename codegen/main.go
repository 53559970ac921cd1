// Command codegen regenerates the endpoint catalog from the upstream
// endpoint manifest plus the overlay file.
//
// Usage:
//
//	go run ./codegen                         # Fetch manifest, regenerate catalog
//	go run ./codegen --manifest ./endpoints.json
//	go run ./codegen --dry-run               # Show what would be written
//
// The catalog is versioned output: endpoints/registry.json and
// endpoints/identifiers.go are committed, and deployments never fetch the
// manifest themselves.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const defaultManifestURL = "https://raw.githubusercontent.com/aws/aws-sdk-go-v2/main/codegen/smithy-aws-go-codegen/src/main/resources/software/amazon/smithy/aws/go/codegen/endpoints.json"

var (
	manifestSource = ""
	overlayPath    = ""
	outputDir      = ""
	dryRun         = false
)

func init() {
	flag.StringVar(&manifestSource, "manifest", defaultManifestURL, "Manifest URL or local file path")
	flag.StringVar(&overlayPath, "overlay", "", "Overlay file (default: overlays.yaml next to codegen)")
	flag.StringVar(&outputDir, "output", "", "Output directory (default: ../endpoints relative to codegen)")
	flag.BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")
}

func main() {
	flag.Parse()

	if overlayPath == "" {
		overlayPath = filepath.Join(toolDir(), "overlays.yaml")
	}
	if outputDir == "" {
		outputDir = filepath.Join(toolDir(), "..", "endpoints")
	}

	overlay, err := loadOverlay(overlayPath)
	if err != nil {
		log.Fatalf("loading overlay: %v", err)
	}
	fmt.Printf("Overlay: %d included services, %d manual entries, %d renames\n",
		len(overlay.Include), len(overlay.Manual), len(overlay.Renames))

	fmt.Printf("Fetching manifest from %s\n", manifestSource)
	manifest, err := fetchManifest(manifestSource)
	if err != nil {
		log.Fatalf("fetching manifest: %v", err)
	}
	fmt.Printf("Manifest partitions: %d\n", len(manifest.Partitions))

	catalog, err := buildCatalog(manifest, overlay)
	if err != nil {
		log.Fatalf("building catalog: %v", err)
	}
	fmt.Printf("Catalog services: %d\n", len(catalog.Services))

	if dryRun {
		fmt.Println("Dry run - no files written")
		return
	}

	if err := writeRegistry(catalog, filepath.Join(outputDir, "registry.json")); err != nil {
		log.Fatalf("writing registry: %v", err)
	}
	if err := writeIdentifiers(catalog, overlay, filepath.Join(outputDir, "identifiers.go")); err != nil {
		log.Fatalf("writing identifiers: %v", err)
	}

	fmt.Println("Generation complete")
}

// toolDir returns the codegen directory, so relative defaults work whether
// the tool runs from the module root or from codegen itself.
func toolDir() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("getting working directory: %v", err)
	}
	if filepath.Base(wd) == "codegen" {
		return wd
	}
	return filepath.Join(wd, "codegen")
}
