// Package policy builds the IAM-style policy statements the VAMS stacks
// attach to deployed resources: the bucket secure-transport deny, the KMS
// key grant for the managed services a deployment enables, and the stable
// resource-name suffix helper.
package policy

import (
	json "github.com/goccy/go-json"
)

// Json is a shorthand for map[string]any, used for inline Condition blocks.
type Json = map[string]any

// Statement effects.
const (
	EffectAllow = "Allow"
	EffectDeny  = "Deny"
)

// PolicyVersion is the policy-language version stamped on documents.
const PolicyVersion = "2012-10-17"

// Condition operator keys used by the builders.
const (
	Bool         = "Bool"
	StringEquals = "StringEquals"
	ArnLike      = "ArnLike"
)

// AllPrincipal is the wildcard principal.
const AllPrincipal = "*"

// PolicyDocument is an IAM policy document.
type PolicyDocument struct {
	Version   string `json:"Version,omitempty"`
	Statement []any  `json:"Statement"`
}

// NewPolicyDocument creates a PolicyDocument with the default version.
func NewPolicyDocument(statements ...any) PolicyDocument {
	return PolicyDocument{Version: PolicyVersion, Statement: statements}
}

// PolicyStatement is a single IAM policy statement.
type PolicyStatement struct {
	Sid       string `json:"Sid,omitempty"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Action    any    `json:"Action,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
	Condition Json   `json:"Condition,omitempty"`
}

// ServicePrincipal is a service-principal list. Serializes to
// {"Service": ...}, collapsing a single entry to a bare string.
type ServicePrincipal []string

// MarshalJSON serializes to {"Service": ...} format.
func (p ServicePrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"Service": p[0]})
	}
	return json.Marshal(map[string]any{"Service": []string(p)})
}

// AWSPrincipal is an account/role/user principal list. Serializes to
// {"AWS": ...}, collapsing a single entry to a bare string.
type AWSPrincipal []string

// MarshalJSON serializes to {"AWS": ...} format.
func (p AWSPrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"AWS": p[0]})
	}
	return json.Marshal(map[string]any{"AWS": []string(p)})
}

// CompositePrincipal combines account and service principals in a single
// statement principal block.
type CompositePrincipal struct {
	AWS     []string
	Service []string
}

// MarshalJSON serializes to {"AWS": ..., "Service": ...}, omitting empty
// groups and collapsing single entries to bare strings.
func (p CompositePrincipal) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 2)
	if len(p.AWS) == 1 {
		out["AWS"] = p.AWS[0]
	} else if len(p.AWS) > 0 {
		out["AWS"] = p.AWS
	}
	if len(p.Service) == 1 {
		out["Service"] = p.Service[0]
	} else if len(p.Service) > 0 {
		out["Service"] = p.Service
	}
	return json.Marshal(out)
}
