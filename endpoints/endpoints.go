// Package endpoints resolves logical service identifiers to concrete
// per-partition endpoint values: ARNs, regional hostnames, and service
// principals.
//
// The catalog is a generated data asset (registry.json) produced offline by
// the codegen tool from the upstream endpoint manifest plus a small overlay
// of manual entries. Not every service exists in every partition; a lookup
// for an undefined (service, partition) pair is a hard error, never a
// fallback to another partition's record.
//
// Example:
//
//	reg := endpoints.Default()
//	ep, err := reg.Resolve(endpoints.ServiceS3, endpoints.PartitionAWS, endpoints.Context{
//	    Region:    "us-east-1",
//	    AccountID: "123456789012",
//	})
//	// ep.Hostname == "s3.us-east-1.amazonaws.com"
package endpoints

import (
	"fmt"
	"sort"
	"strings"
)

// ServiceIdentifier is a logical service name from the generated catalog,
// in UPPER_SNAKE form (e.g. "S3", "COGNITO_IDP"). The declared identifiers
// are the Service* constants in identifiers.go.
type ServiceIdentifier string

// PartitionKey identifies a deployment realm. Each partition carries its own
// DNS suffix, ARN prefix, and service availability.
type PartitionKey string

const (
	// PartitionAWS is the standard commercial partition.
	PartitionAWS PartitionKey = "aws"
	// PartitionChina is the China regions partition.
	PartitionChina PartitionKey = "aws-cn"
	// PartitionUSGov is the GovCloud (US) partition.
	PartitionUSGov PartitionKey = "aws-us-gov"
	// PartitionISO is the isolated partition.
	PartitionISO PartitionKey = "aws-iso"
	// PartitionISOB is the secondary isolated partition.
	PartitionISOB PartitionKey = "aws-iso-b"
)

// Placeholder tokens substituted at resolution time.
const (
	placeholderRegion   = "{region}"
	placeholderAccount  = "{account-id}"
	placeholderResource = "{resource-id}"
)

// Record holds the template strings for one service in one partition, as
// stored in the catalog. Templates may contain {region}, {account-id} and,
// for ARNs, {resource-id} placeholders.
type Record struct {
	Arn          string `json:"arn"`
	Principal    string `json:"principal"`
	Hostname     string `json:"hostname"`
	FipsHostname string `json:"fipsHostname"`
}

// Context carries the deployment values substituted into catalog templates.
type Context struct {
	// Region is substituted for {region}.
	Region string
	// AccountID is substituted for {account-id}.
	AccountID string
	// UseFips selects the FIPS hostname variant where one is published.
	UseFips bool
}

// ResolvedEndpoint is the concrete result of resolving a service against a
// partition. Values contain no placeholder tokens.
type ResolvedEndpoint struct {
	// Hostname is the regional endpoint hostname (FIPS variant when the
	// context requests it).
	Hostname string
	// Principal is the service-principal identity string, suitable for use
	// as a trust-policy principal. It is not validated against any live
	// directory.
	Principal string
}

// UnknownServiceError reports an identifier that is not declared in the
// catalog at all.
type UnknownServiceError struct {
	Service ServiceIdentifier
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("endpoints: unknown service identifier %q", string(e.Service))
}

// NotFoundInPartitionError reports a declared service with no record for the
// requested partition. This is a configuration error: the service catalog
// for that partition does not offer the service.
type NotFoundInPartitionError struct {
	Service   ServiceIdentifier
	Key       string
	Partition PartitionKey
}

func (e *NotFoundInPartitionError) Error() string {
	return fmt.Sprintf("endpoints: service %s (%s) has no record in partition %q",
		e.Service, e.Key, e.Partition)
}

// Registry is the immutable endpoint catalog. Construct one with Default()
// or Load(); a Registry is safe for concurrent use.
type Registry struct {
	version  string
	services map[string]map[PartitionKey]Record
}

// Version returns the catalog version stamp recorded by the generator.
func (r *Registry) Version() string {
	return r.version
}

// Services returns all declared logical identifiers, sorted.
func (r *Registry) Services() []ServiceIdentifier {
	ids := make([]ServiceIdentifier, 0, len(serviceKeys))
	for id := range serviceKeys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Partitions returns the partitions for which the given service has catalog
// records, sorted.
func (r *Registry) Partitions(service ServiceIdentifier) ([]PartitionKey, error) {
	records, _, err := r.recordsFor(service)
	if err != nil {
		return nil, err
	}
	parts := make([]PartitionKey, 0, len(records))
	for p := range records {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })
	return parts, nil
}

// Key returns the canonical catalog key for a logical identifier.
func (r *Registry) Key(service ServiceIdentifier) (string, error) {
	key, ok := serviceKeys[service]
	if !ok {
		return "", &UnknownServiceError{Service: service}
	}
	return key, nil
}

// Resolve produces the hostname and principal for a service in a partition,
// substituting the context's region and account into the catalog templates.
// It returns a NotFoundInPartitionError when the service has no record for
// the partition; there is deliberately no cross-partition fallback.
func (r *Registry) Resolve(service ServiceIdentifier, partition PartitionKey, rc Context) (ResolvedEndpoint, error) {
	record, err := r.lookup(service, partition)
	if err != nil {
		return ResolvedEndpoint{}, err
	}

	host := record.Hostname
	if rc.UseFips {
		host = record.FipsHostname
	}

	return ResolvedEndpoint{
		Hostname:  substitute(host, rc, ""),
		Principal: substitute(record.Principal, rc, ""),
	}, nil
}

// BuildArn produces a concrete ARN for a resource of the given service. The
// resourceID is substituted for {resource-id}; resourceName, when non-empty,
// is appended as a "/"-separated sub-path (bucket/key-prefix style).
func (r *Registry) BuildArn(service ServiceIdentifier, partition PartitionKey, rc Context, resourceID, resourceName string) (string, error) {
	if resourceID == "" {
		return "", fmt.Errorf("endpoints: resource id is required to build an ARN for %s", service)
	}
	record, err := r.lookup(service, partition)
	if err != nil {
		return "", err
	}
	arn := substitute(record.Arn, rc, resourceID)
	if resourceName != "" {
		arn += "/" + resourceName
	}
	return arn, nil
}

// Principal returns the bare service-principal identity string for a service
// in a partition.
func (r *Registry) Principal(service ServiceIdentifier, partition PartitionKey) (string, error) {
	record, err := r.lookup(service, partition)
	if err != nil {
		return "", err
	}
	return record.Principal, nil
}

// lookup is the typed two-stage lookup: identifier to canonical key, then
// canonical key to partition record. Each stage fails with its own error.
func (r *Registry) lookup(service ServiceIdentifier, partition PartitionKey) (Record, error) {
	records, key, err := r.recordsFor(service)
	if err != nil {
		return Record{}, err
	}
	record, ok := records[partition]
	if !ok {
		return Record{}, &NotFoundInPartitionError{Service: service, Key: key, Partition: partition}
	}
	return record, nil
}

func (r *Registry) recordsFor(service ServiceIdentifier) (map[PartitionKey]Record, string, error) {
	key, ok := serviceKeys[service]
	if !ok {
		return nil, "", &UnknownServiceError{Service: service}
	}
	records, ok := r.services[key]
	if !ok {
		// Identifier is declared but the data asset has no entry for it.
		// Load() rejects such catalogs, so this indicates a hand-edited asset.
		return nil, key, &UnknownServiceError{Service: service}
	}
	return records, key, nil
}

func substitute(template string, rc Context, resourceID string) string {
	out := strings.ReplaceAll(template, placeholderRegion, rc.Region)
	out = strings.ReplaceAll(out, placeholderAccount, rc.AccountID)
	if resourceID != "" {
		out = strings.ReplaceAll(out, placeholderResource, resourceID)
	}
	return out
}
