package main

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hmap/pkg/hashmap/chained"
	"github.com/spf13/cobra"
)

var cmdMode = &cobra.Command{
	Use:   "mode VALUE...",
	Short: "Print the most frequent values",
	Long: `
The "mode" command counts the values given as arguments and prints the ones
that occur most often, followed by their frequency. Ties are printed in the
order the frequency map stores them.
`,
	DisableAutoGenTag: true,
	Args:              cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		modes, freq := chained.FindMode(args)
		fmt.Fprintf(cmd.OutOrStdout(), "mode: [%s], frequency: %d\n", strings.Join(modes, ", "), freq)
	},
}

func init() {
	cmdRoot.AddCommand(cmdMode)
}
