package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print construction statistics and value counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, d, err := load(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Variables:  %d\n", d.Variables())
		fmt.Fprintf(out, "Rows:       %d\n", table.Len())
		fmt.Fprintf(out, "Reachable:  %d\n", d.Size())
		fmt.Fprintln(out, d.NodeTable().Stats())
		fmt.Fprintln(out)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "value\tassignments")
		for _, v := range d.Values() {
			fmt.Fprintf(tw, "%s\t%s\n", v, d.Count(v))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
