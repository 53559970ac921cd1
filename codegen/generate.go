package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Record mirrors endpoints.Record; codegen keeps its own copy so the
// generator does not import the package it generates into.
type Record struct {
	Arn          string `json:"arn"`
	Principal    string `json:"principal"`
	Hostname     string `json:"hostname"`
	FipsHostname string `json:"fipsHostname"`
}

// Catalog is the generated output model.
type Catalog struct {
	Version  string
	Services map[string]map[string]Record // key -> partition -> record
}

const catalogVersion = "2026-08-12"

// buildCatalog derives template records for every included service in every
// partition that offers it, then layers the manual overlay entries on top.
func buildCatalog(manifest *Manifest, overlay *Overlay) (*Catalog, error) {
	partitions := make(map[string]ManifestPartition, len(manifest.Partitions))
	for _, p := range manifest.Partitions {
		partitions[p.Partition] = p
	}

	catalog := &Catalog{
		Version:  catalogVersion,
		Services: make(map[string]map[string]Record, len(overlay.Include)),
	}

	for _, key := range overlay.Include {
		records := make(map[string]Record)

		if manual, ok := overlay.Manual[key]; ok {
			fips := make(map[string]bool, len(manual.Fips))
			for _, p := range manual.Fips {
				fips[p] = true
			}
			for _, pname := range manual.Partitions {
				p, ok := partitions[pname]
				if !ok {
					return nil, fmt.Errorf("manual entry %q names unknown partition %q", key, pname)
				}
				records[pname] = deriveRecord(key, p, fips[pname], overlay)
			}
		} else {
			for _, p := range manifest.Partitions {
				svc, ok := p.Services[key]
				if !ok {
					continue
				}
				records[p.Partition] = deriveRecord(key, p, svc.HasFips(), overlay)
			}
		}

		if len(records) == 0 {
			return nil, fmt.Errorf("service %q is included but appears in no partition", key)
		}
		catalog.Services[key] = records
	}

	return catalog, nil
}

// deriveRecord produces the template record for one service in one partition.
func deriveRecord(key string, p ManifestPartition, hasFips bool, overlay *Overlay) Record {
	hostname := key + ".{region}." + p.DNSSuffix
	_, pinned := overlay.Hostnames[key][p.Partition]
	if pinned {
		hostname = overlay.Hostnames[key][p.Partition]
	}

	// Pinned hostnames belong to global services; the regional FIPS template
	// never applies to them.
	fipsHostname := hostname
	if hasFips && !pinned {
		fipsHostname = key + "-fips.{region}." + p.DNSSuffix
	}

	arnFormat, ok := overlay.ArnFormats[key]
	if !ok {
		arnFormat = "arn:{partition}:" + key + ":{region}:{account-id}:{resource-id}"
	}

	principalSuffix := "amazonaws.com"
	if p.Partition == "aws-cn" {
		principalSuffix = "amazonaws.com.cn"
	}
	principalBase := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		principalBase = key[i+1:]
	}

	return Record{
		Arn:          strings.ReplaceAll(arnFormat, "{partition}", p.Partition),
		Principal:    principalBase + "." + principalSuffix,
		Hostname:     hostname,
		FipsHostname: fipsHostname,
	}
}

// writeRegistry emits registry.json with stable key ordering.
func writeRegistry(catalog *Catalog, path string) error {
	type partitionsDoc struct {
		Partitions map[string]Record `json:"partitions"`
	}
	doc := struct {
		Version  string                   `json:"version"`
		Source   string                   `json:"source"`
		Services map[string]partitionsDoc `json:"services"`
	}{
		Version:  catalog.Version,
		Source:   "endpoints-manifest",
		Services: make(map[string]partitionsDoc, len(catalog.Services)),
	}
	for key, records := range catalog.Services {
		doc.Services[key] = partitionsDoc{Partitions: records}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// writeIdentifiers emits the generated Go constants and key map.
func writeIdentifiers(catalog *Catalog, overlay *Overlay, path string) error {
	type pair struct{ name, key string }
	pairs := make([]pair, 0, len(catalog.Services))
	for key := range catalog.Services {
		pairs = append(pairs, pair{name: overlay.logicalName(key), key: key})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	width := 0
	for _, p := range pairs {
		if n := len(constName(p.name)); n > width {
			width = n
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by vams-infra codegen; DO NOT EDIT.\n\n")
	buf.WriteString("package endpoints\n\n")
	buf.WriteString("// Logical service identifiers declared in the endpoint catalog.\n")
	buf.WriteString("const (\n")
	for _, p := range pairs {
		fmt.Fprintf(&buf, "\t%-*s ServiceIdentifier = %q\n", width, constName(p.name), p.name)
	}
	buf.WriteString(")\n\n")
	buf.WriteString("// serviceKeys maps each logical identifier to its canonical catalog key.\n")
	buf.WriteString("var serviceKeys = map[ServiceIdentifier]string{\n")
	for _, p := range pairs {
		fmt.Fprintf(&buf, "\t%-*s %q,\n", width+1, constName(p.name)+":", p.key)
	}
	buf.WriteString("}\n")

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// mechanicalName is the default UPPER_SNAKE identifier for a canonical key.
func mechanicalName(key string) string {
	name := strings.ToUpper(key)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}

// constName renders an identifier as its Go constant name.
func constName(name string) string {
	parts := strings.Split(strings.ToLower(name), "_")
	var b strings.Builder
	b.WriteString("Service")
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
