package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bdentino/compose-addons/internal/compose"
	"github.com/bdentino/compose-addons/internal/ui"
)

var mergeOutput string

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge <base> [overlay...]",
	Short: "Deep-merge compose overlays onto a base configuration",
	Long: `Merge one or more overlay configurations onto a base, in order.
Mappings merge recursively with later values winning; lists and scalars
are replaced outright.

This is for local overlay workflows (a production overlay on top of a
development base, say) that do not involve include sections.

Examples:
  compose-addons merge docker-compose.yml production.yml
  cat base.yml | compose-addons merge - overlay.yml -o merged.yml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", stdio, "Output file, - for stdout")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) {
	base, err := readInput(cmd, args[0])
	if err != nil {
		ui.Fatal("%v", err)
	}

	for _, overlayPath := range args[1:] {
		overlay, err := readInput(cmd, overlayPath)
		if err != nil {
			ui.Fatal("%v", err)
		}
		base = compose.DeepMerge(base, overlay)
	}

	if err := writeOutput(cmd, mergeOutput, base); err != nil {
		ui.Fatal("%v", err)
	}
}
