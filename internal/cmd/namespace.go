package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bdentino/compose-addons/internal/compose"
	"github.com/bdentino/compose-addons/internal/ui"
)

var namespaceOutput string

// namespaceCmd represents the namespace command.
var namespaceCmd = &cobra.Command{
	Use:   "namespace <namespace> [compose-file]",
	Short: "Qualify every service in a compose file with a namespace",
	Long: `Prefix every service name with a namespace and rewrite links and
volumes_from entries between services of the file to use the qualified
names. The applied namespace is recorded under the reserved "namespace"
key, which the include command drops again when the file is pulled in.

Use this to prepare a fragment for hand-merging into another
configuration without name collisions.

Examples:
  compose-addons namespace db docker-compose.yml
  cat docker-compose.yml | compose-addons namespace db -o db-fragment.yml`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runNamespace,
}

func init() {
	namespaceCmd.Flags().StringVarP(&namespaceOutput, "output", "o", stdio, "Output file, - for stdout")

	rootCmd.AddCommand(namespaceCmd)
}

func runNamespace(cmd *cobra.Command, args []string) {
	namespace := args[0]
	path := stdio
	if len(args) > 1 {
		path = args[1]
	}

	doc, err := readInput(cmd, path)
	if err != nil {
		ui.Fatal("%v", err)
	}

	compose.ResolveNamespacedLinks(doc, namespace, compose.ServiceNames(doc))
	compose.QualifyServices(doc, namespace)
	doc[compose.NamespaceKey] = namespace

	if err := writeOutput(cmd, namespaceOutput, doc); err != nil {
		ui.Fatal("%v", err)
	}
}
