package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/endpoints"
	"github.com/openvams/vams-infra-go/internal/serialize"
)

func newResolveCmd() *cobra.Command {
	var (
		partition  string
		region     string
		accountID  string
		resourceID string
		useFips    bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "resolve <service>",
		Short: "Resolve a service endpoint for a partition",
		Long: `Resolve looks up a service in the endpoint catalog and prints its
hostname and service principal for the requested partition, with all
region placeholders substituted.

With --resource, the service's ARN is built as well.

Examples:
    vams-infra resolve S3 --partition aws --region us-east-1
    vams-infra resolve LAMBDA --partition aws-us-gov --region us-gov-west-1 --fips
    vams-infra resolve S3 --partition aws --region us-east-1 --resource asset-bucket`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], partition, region, accountID, resourceID, useFips, outputFile)
		},
	}

	cmd.Flags().StringVarP(&partition, "partition", "p", "aws", "Partition key: aws, aws-cn, aws-us-gov, aws-iso, aws-iso-b")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Deployment region (required)")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "Account ID for ARN construction")
	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource ID; when set the service ARN is built too")
	cmd.Flags().BoolVar(&useFips, "fips", false, "Resolve the FIPS endpoint variant")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func runResolve(service, partition, region, accountID, resourceID string, useFips bool, outputFile string) error {
	reg := endpoints.Default()

	id, err := lookupIdentifier(reg, service)
	if err != nil {
		return err
	}

	pk := endpoints.PartitionKey(partition)
	rc := endpoints.Context{Region: region, AccountID: accountID, UseFips: useFips}

	resolved, err := reg.Resolve(id, pk, rc)
	if err != nil {
		return err
	}

	result := vamsinfra.ResolveResult{
		Service:   string(id),
		Partition: partition,
		Region:    region,
		Hostname:  resolved.Hostname,
		Principal: resolved.Principal,
	}

	if resourceID != "" {
		arn, err := reg.BuildArn(id, pk, rc, resourceID, "")
		if err != nil {
			return err
		}
		result.Arn = arn
	}

	return serialize.Write(result, outputFile)
}

// lookupIdentifier matches a user-supplied service name against the catalog,
// tolerating case and -/. separators (s3, S3, api.ecr-public, API_ECR_PUBLIC
// all work).
func lookupIdentifier(reg *endpoints.Registry, name string) (endpoints.ServiceIdentifier, error) {
	want := normalizeServiceName(name)
	for _, id := range reg.Services() {
		if normalizeServiceName(string(id)) == want {
			return id, nil
		}
		if key, err := reg.Key(id); err == nil && normalizeServiceName(key) == want {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown service %q (run 'vams-infra list' for the catalog)", name)
}

func normalizeServiceName(name string) string {
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}
