package policy

import (
	"fmt"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/endpoints"
)

// keyGrantActions is the fixed action set granted on the deployment KMS key.
var keyGrantActions = []string{
	"kms:Decrypt",
	"kms:Encrypt",
	"kms:ReEncrypt*",
	"kms:GenerateDataKey*",
	"kms:DescribeKey",
	"kms:CreateGrant",
	"kms:ListAliases",
	"kms:ListKeys",
}

// KeyGrantInput carries everything the KMS key grant builder needs.
type KeyGrantInput struct {
	// Registry resolves service identifiers to principal strings.
	Registry *endpoints.Registry
	// Partition is the deployment partition.
	Partition endpoints.PartitionKey
	// AccountArn is the deploying account's root principal ARN. Always
	// included as an AWS principal; required.
	AccountArn string
	// Services are the service identifiers whose principals are granted
	// key access unconditionally.
	Services []endpoints.ServiceIdentifier
	// Features adds optional principals: the content-delivery principal
	// when CloudFront is enabled, and the search principal matching the
	// selected search variant.
	Features vamsinfra.Features
}

// KeyGrantStatement assembles the single allow statement for the deployment
// KMS key. The principal set is a union: the account root, each requested
// service's principal, and the feature-gated principals. Duplicates are
// never emitted regardless of how the inputs overlap.
func KeyGrantStatement(in KeyGrantInput) (PolicyStatement, error) {
	if in.Registry == nil {
		return PolicyStatement{}, fmt.Errorf("policy: registry is required for the key grant statement")
	}
	if in.AccountArn == "" {
		return PolicyStatement{}, fmt.Errorf("policy: account principal ARN is required for the key grant statement")
	}

	services := in.Services
	if in.Features.CloudFront {
		services = append(services, endpoints.ServiceCloudfront)
	}
	switch in.Features.Search {
	case vamsinfra.SearchCluster:
		services = append(services, endpoints.ServiceOpensearch)
	case vamsinfra.SearchServerless:
		services = append(services, endpoints.ServiceOpensearchServerless)
	}

	seen := make(map[string]bool, len(services))
	principals := make([]string, 0, len(services))
	for _, svc := range services {
		p, err := in.Registry.Principal(svc, in.Partition)
		if err != nil {
			return PolicyStatement{}, fmt.Errorf("resolving key grant principal: %w", err)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		principals = append(principals, p)
	}

	return PolicyStatement{
		Sid:    "DeploymentKeyGrant",
		Effect: EffectAllow,
		Principal: CompositePrincipal{
			AWS:     []string{in.AccountArn},
			Service: principals,
		},
		Action:   keyGrantActions,
		Resource: "*",
	}, nil
}
