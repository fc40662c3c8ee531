package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"contactplot/internal/services/annotate"
	"contactplot/internal/services/loader"
)

// domainsCmd prints the resolved domain table so the --embedded-domains and
// --fill-gaps effects can be checked before a run.
func domainsCmd() *cobra.Command {
	var embedded, fillGaps bool
	cmd := &cobra.Command{
		Use:   "domains <domains.csv>",
		Short: "Print the domains a run would use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			declared, err := loader.New().LoadDomains(args[0])
			if err != nil {
				return err
			}
			resolved := annotate.Resolve(declared, embedded, fillGaps)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tSTART\tSTOP\tCOLOR\tNOTE")
			for _, d := range resolved {
				note := ""
				for _, other := range declared {
					if annotate.Embedded(d.Interval, other.Interval) {
						note = "embedded in " + other.Name
						break
					}
				}
				if d.Filler {
					note = "gap"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", d.Name, d.Interval.Start, d.Interval.End, d.Color, note)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&embedded, "embedded-domains", "e", false, "keep domains embedded in another domain")
	cmd.Flags().BoolVar(&fillGaps, "fill-gaps", false, "add before/between pseudo-domains")
	return cmd
}
