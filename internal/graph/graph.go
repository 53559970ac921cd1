// Package graph renders the endpoint catalog's service-to-partition coverage
// as DOT or Mermaid output, for eyeballing which services a restricted
// partition is missing.
package graph

import (
	"io"
	"strings"

	"github.com/emicklei/dot"

	"github.com/openvams/vams-infra-go/endpoints"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator renders coverage graphs from an endpoint registry.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// Partition limits the graph to a single partition's catalog.
	Partition endpoints.PartitionKey
}

// Generate renders the coverage graph for reg and writes it to w.
func (g *Generator) Generate(reg *endpoints.Registry, w io.Writer) error {
	graph, err := g.buildGraph(reg)
	if err != nil {
		return err
	}

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err = w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(reg *endpoints.Registry) (string, error) {
	var sb strings.Builder
	if err := g.Generate(reg, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(reg *endpoints.Registry) (*dot.Graph, error) {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "LR")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	for _, id := range reg.Services() {
		parts, err := reg.Partitions(id)
		if err != nil {
			return nil, err
		}
		for _, p := range parts {
			if g.Partition != "" && p != g.Partition {
				continue
			}
			svc := graph.Node(string(id))
			part := graph.Node(string(p))
			part.Attr("shape", "ellipse")
			graph.Edge(svc, part)
		}
	}

	return graph, nil
}
