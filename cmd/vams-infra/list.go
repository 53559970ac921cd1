package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/endpoints"
	"github.com/openvams/vams-infra-go/internal/serialize"
)

func newListCmd() *cobra.Command {
	var (
		outputFormat string
		partition    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the endpoint catalog",
		Long: `List displays every service in the endpoint catalog with its canonical
key and partition coverage.

Examples:
    vams-infra list
    vams-infra list --partition aws-us-gov
    vams-infra list --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(outputFormat, partition)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&partition, "partition", "p", "", "Only show services available in this partition")

	return cmd
}

func runList(format, partition string) error {
	reg := endpoints.Default()

	result := vamsinfra.ListResult{}
	for _, id := range reg.Services() {
		key, err := reg.Key(id)
		if err != nil {
			return err
		}
		parts, err := reg.Partitions(id)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(parts))
		inPartition := partition == ""
		for _, p := range parts {
			names = append(names, string(p))
			if string(p) == partition {
				inPartition = true
			}
		}
		if !inPartition {
			continue
		}

		result.Services = append(result.Services, vamsinfra.ListService{
			Name:       string(id),
			Key:        key,
			Partitions: names,
		})
	}

	return outputListResult(result, format)
}

func outputListResult(result vamsinfra.ListResult, format string) error {
	switch format {
	case "json":
		return serialize.Write(result, "")

	case "text":
		if len(result.Services) == 0 {
			fmt.Println("No services found.")
			return nil
		}

		fmt.Printf("Catalog services (%d):\n\n", len(result.Services))
		for _, svc := range result.Services {
			fmt.Printf("  %s (%s): %d partitions\n", svc.Name, svc.Key, len(svc.Partitions))
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
