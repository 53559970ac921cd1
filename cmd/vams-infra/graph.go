package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openvams/vams-infra-go/endpoints"
	"github.com/openvams/vams-infra-go/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var (
		outputFormat string
		partition    string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate DOT graph of catalog partition coverage",
		Long: `Generate a DOT or Mermaid format graph of which partitions each
catalog service is available in.

The output can be rendered with Graphviz:
    vams-infra graph | dot -Tpng -o coverage.png

Or used in GitHub markdown (Mermaid format):
    vams-infra graph -f mermaid

Examples:
    vams-infra graph
    vams-infra graph -p aws-us-gov
    vams-infra graph -f mermaid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(outputFormat, partition)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVarP(&partition, "partition", "p", "", "Limit the graph to a single partition")

	return cmd
}

func runGraph(format, partition string) error {
	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{
		Format:    graphFormat,
		Partition: endpoints.PartitionKey(partition),
	}

	return gen.Generate(endpoints.Default(), os.Stdout)
}
