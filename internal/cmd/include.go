package cmd

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdentino/compose-addons/internal/fetch"
	"github.com/bdentino/compose-addons/internal/include"
	"github.com/bdentino/compose-addons/internal/ui"
)

var (
	includeOutput  string
	includeTimeout int
)

// includeCmd represents the include command.
var includeCmd = &cobra.Command{
	Use:   "include [compose-file]",
	Short: "Resolve a compose file's include section into one flat config",
	Long: `Fetch each configuration named in the include section and merge it into
the base configuration. Included files may have include sections of their
own; fetching continues until no includes remain.

Each include entry maps a namespace to a source. Sources may be local
paths, file:// URLs, http(s):// URLs, or s3://bucket/key URLs. Service
names from an included file are prefixed with its namespace, and links or
volumes_from entries between services of the same file are rewritten to
match.

Examples:
  # Flatten to stdout
  compose-addons include docker-compose.yml

  # Flatten stdin to a file
  cat docker-compose.yml | compose-addons include -o flat.yml

  # Slow remote sources
  compose-addons include --timeout 60 docker-compose.yml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInclude,
}

func init() {
	includeCmd.Flags().StringVarP(&includeOutput, "output", "o", stdio, "Output file, - for stdout")
	includeCmd.Flags().IntVar(&includeTimeout, "timeout", 0, "Timeout in seconds for network calls (default 20)")

	rootCmd.AddCommand(includeCmd)
}

func runInclude(cmd *cobra.Command, args []string) {
	path := stdio
	if len(args) > 0 {
		path = args[0]
	}

	doc, err := readInput(cmd, path)
	if err != nil {
		ui.Fatal("%v", err)
	}

	// Relative includes in the base file resolve against its own
	// directory; stdin input resolves against the working directory.
	baseDir := "."
	if path != stdio {
		abs, err := filepath.Abs(path)
		if err != nil {
			ui.Fatal("resolve %s: %v", path, err)
		}
		baseDir = filepath.Dir(abs)
	}

	cfg := fetch.DefaultConfig()
	if includeTimeout > 0 {
		cfg.Timeout = time.Duration(includeTimeout) * time.Second
	}

	flat, err := include.Flatten(cmd.Context(), doc, baseDir, cfg)
	if err != nil {
		ui.Fatal("%v", err)
	}

	if err := writeOutput(cmd, includeOutput, flat); err != nil {
		ui.Fatal("%v", err)
	}
}
