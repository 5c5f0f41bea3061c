package main

import (
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the truth table of the function",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInput(cmd)
		if err != nil {
			return err
		}
		table, err := newTable(in)
		if err != nil {
			return err
		}
		_, err = table.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
