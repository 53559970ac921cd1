package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openvams/vams-infra-go/endpoints"
	"github.com/openvams/vams-infra-go/internal/deployconfig"
	"github.com/openvams/vams-infra-go/internal/serialize"
	"github.com/openvams/vams-infra-go/policy"
)

func newPolicyCmd() *cobra.Command {
	var (
		configPath string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Emit the deployment's IAM policy statements",
		Long: `Policy composes the deployment's IAM statements from the endpoint
catalog and the feature flags: the KMS key grant for the deployment's
service principals, and the storage bucket's insecure-transport deny.

The output is a policy document per target, keyed by target name.

Examples:
    vams-infra policy --config deploy.yaml
    vams-infra policy --config deploy.yaml -o policies.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicy(configPath, outputFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Deployment configuration file (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// keyGrantServices is the base set of service principals granted access to
// the deployment key; feature flags extend it inside KeyGrantStatement.
var keyGrantServices = []endpoints.ServiceIdentifier{
	endpoints.ServiceLambda,
	endpoints.ServiceS3,
	endpoints.ServiceSns,
	endpoints.ServiceSqs,
	endpoints.ServiceStates,
	endpoints.ServiceLogs,
}

func runPolicy(configPath, outputFile string) error {
	cfg, err := deployconfig.Load(configPath)
	if err != nil {
		return err
	}

	docs, err := composePolicies(cfg)
	if err != nil {
		return err
	}

	return serialize.Write(docs, outputFile)
}

func composePolicies(cfg *deployconfig.Config) (map[string]policy.PolicyDocument, error) {
	reg := endpoints.Default()

	accountArn, err := cfg.AccountRootArn(reg)
	if err != nil {
		return nil, fmt.Errorf("building account principal: %w", err)
	}

	keyGrant, err := policy.KeyGrantStatement(policy.KeyGrantInput{
		Registry:   reg,
		Partition:  cfg.PartitionKey(),
		AccountArn: accountArn,
		Services:   keyGrantServices,
		Features:   cfg.Features,
	})
	if err != nil {
		return nil, fmt.Errorf("composing key grant: %w", err)
	}

	docs := map[string]policy.PolicyDocument{
		"kmsKey": policy.NewPolicyDocument(keyGrant),
	}

	if cfg.StorageBucket != "" {
		bucketArn, err := reg.BuildArn(endpoints.ServiceS3, cfg.PartitionKey(), cfg.Context(), cfg.StorageBucket, "")
		if err != nil {
			return nil, fmt.Errorf("building bucket arn: %w", err)
		}
		deny, err := policy.SecureTransportDenyStatement(bucketArn)
		if err != nil {
			return nil, fmt.Errorf("composing bucket policy: %w", err)
		}
		docs["storageBucket"] = policy.NewPolicyDocument(deny)
	}

	return docs, nil
}
