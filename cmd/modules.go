package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/params"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the practice topics and their operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-12s  %-6s  %-12s  %s\n", "Module", "Year", "Strand", "Name")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, t := range curriculum.AllTopics() {
			fmt.Fprintf(out, "%-12s  %-6d  %-12s  %s\n",
				t.ID, t.Year, curriculum.StrandDisplayName(t.Strand), t.Name)
			if !verbose {
				continue
			}
			for l := params.MinLevel; l <= params.MaxLevel; l++ {
				p, err := params.Lookup(t.ID, l)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "    L%d  %s\n", l, strings.Join(p.Operations, ", "))
			}
		}
		return nil
	},
}

func init() {
	modulesCmd.Flags().BoolP("verbose", "v", false, "Show the operations enabled at each level")
}
