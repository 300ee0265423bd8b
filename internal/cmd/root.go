// Package cmd provides the CLI commands for compose-addons.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.4.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "compose-addons",
	Short: "Pre-process docker-compose configurations",
	Long: `compose-addons - pre-processing for docker-compose configurations

Resolve include sections, namespace fragments, and merge overlays into a
single flat compose file ready to hand to docker-compose.

COMMANDS
  include [file]            Recursively resolve the include section into
                            one flat, namespaced configuration
    -o, --output <file>     Output file, - for stdout (default -)
    --timeout <seconds>     Timeout for network calls (default 20)

  namespace <ns> [file]     Qualify every service in a configuration with
                            a namespace, rewriting links and volumes_from

  merge [base] [overlay..]  Deep-merge overlay configurations onto a base

All commands read from stdin when the input file is - or omitted.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("compose-addons version {{.Version}}\n")
}
