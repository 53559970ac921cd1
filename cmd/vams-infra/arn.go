package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openvams/vams-infra-go/endpoints"
)

func newArnCmd() *cobra.Command {
	var (
		partition    string
		region       string
		accountID    string
		resourceName string
	)

	cmd := &cobra.Command{
		Use:   "arn <service> <resource-id>",
		Short: "Build a resource ARN from the catalog template",
		Long: `Arn substitutes the deployment context and resource identifier into
the service's ARN template. An optional resource name is appended as a
"/"-separated sub-path (bucket/key-prefix style).

Examples:
    vams-infra arn S3 asset-bucket
    vams-infra arn S3 asset-bucket --name "previews/*"
    vams-infra arn LAMBDA ingest --partition aws-us-gov --region us-gov-west-1 --account 123456789012`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArn(args[0], args[1], partition, region, accountID, resourceName)
		},
	}

	cmd.Flags().StringVarP(&partition, "partition", "p", "aws", "Partition key: aws, aws-cn, aws-us-gov, aws-iso, aws-iso-b")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Deployment region")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "Account ID")
	cmd.Flags().StringVar(&resourceName, "name", "", "Resource name appended to the ARN as a sub-path")

	return cmd
}

func runArn(service, resourceID, partition, region, accountID, resourceName string) error {
	reg := endpoints.Default()

	id, err := lookupIdentifier(reg, service)
	if err != nil {
		return err
	}

	rc := endpoints.Context{Region: region, AccountID: accountID}
	arn, err := reg.BuildArn(id, endpoints.PartitionKey(partition), rc, resourceID, resourceName)
	if err != nil {
		return err
	}

	fmt.Println(arn)
	return nil
}
