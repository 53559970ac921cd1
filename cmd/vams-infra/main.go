// Command vams-infra resolves service endpoints and composes deployment
// security policy from the endpoint catalog.
//
// Usage:
//
//	vams-infra resolve S3 --partition aws --region us-east-1
//	vams-infra csp --config deploy.yaml     Compose the CSP header
//	vams-infra policy --config deploy.yaml  Emit IAM policy statements
//	vams-infra list                         Show the endpoint catalog
//	vams-infra version                      Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vams-infra",
		Short: "Resolve endpoints and compose deployment security policy",
		Long: `vams-infra is the deployment tooling for the VAMS infrastructure core.

It resolves service endpoints (hostnames, principals, ARNs) for any
provider partition from the committed endpoint catalog, and composes the
deployment's security policy: the Content-Security-Policy header and the
IAM key-grant and bucket statements.

Resolve a single endpoint:

    vams-infra resolve S3 --partition aws-us-gov --region us-gov-west-1 --fips

Compose policy from a deployment config:

    vams-infra csp --config deploy.yaml
    vams-infra policy --config deploy.yaml`,
	}

	rootCmd.AddCommand(
		newResolveCmd(),
		newArnCmd(),
		newCspCmd(),
		newPolicyCmd(),
		newListCmd(),
		newGraphCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vams-infra %s\n", getVersion())
		},
	}
}
