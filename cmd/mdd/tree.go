package main

import (
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the diagram as an indented tree",
	Long: `Prints every path of the reduced diagram from the root, one node per line,
indented by depth. Shared subdiagrams are printed under each parent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := load(cmd)
		if err != nil {
			return err
		}
		return d.WriteStructure(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
