package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vamsinfra "github.com/openvams/vams-infra-go"
	"github.com/openvams/vams-infra-go/csp"
	"github.com/openvams/vams-infra-go/endpoints"
	"github.com/openvams/vams-infra-go/internal/deployconfig"
	"github.com/openvams/vams-infra-go/internal/serialize"
)

func newCspCmd() *cobra.Command {
	var (
		configPath   string
		overridePath string
		outputFile   string
		headerOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "csp",
		Short: "Compose the Content-Security-Policy header",
		Long: `Csp resolves the deployment's origins from the endpoint catalog and
composes the Content-Security-Policy header, applying the override file
when one is configured.

Override problems never fail the command: bad entries are skipped and
reported as warnings, and the baseline policy is emitted.

Examples:
    vams-infra csp --config deploy.yaml
    vams-infra csp --config deploy.yaml --override csp-override.json
    vams-infra csp --config deploy.yaml --header-only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCsp(configPath, overridePath, outputFile, headerOnly)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Deployment configuration file (required)")
	cmd.Flags().StringVar(&overridePath, "override", "", "CSP override file (default: the config's cspOverride path)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&headerOnly, "header-only", false, "Print the raw header value instead of JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runCsp(configPath, overridePath, outputFile string, headerOnly bool) error {
	cfg, err := deployconfig.Load(configPath)
	if err != nil {
		return err
	}

	result, err := composeCsp(cfg, overridePath)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if headerOnly {
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(result.Header+"\n"), 0644)
		}
		fmt.Println(result.Header)
		return nil
	}

	return serialize.Write(result, outputFile)
}

// composeCsp resolves origins and builds the header for a loaded config. The
// override path argument wins over the config's cspOverride field.
func composeCsp(cfg *deployconfig.Config, overridePath string) (vamsinfra.CSPResult, error) {
	origins, err := cfg.Origins(endpoints.Default())
	if err != nil {
		return vamsinfra.CSPResult{}, err
	}

	if overridePath == "" {
		overridePath = cfg.CSPOverride
	}
	override, warnings := csp.LoadOverride(overridePath)

	built := csp.Build(origins, cfg.Features, override)
	return vamsinfra.CSPResult{
		Header:   built.Header,
		Warnings: append(warnings, built.Warnings...),
	}, nil
}
