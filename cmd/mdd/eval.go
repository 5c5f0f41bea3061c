package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval VALUE...",
	Short: "Evaluate one assignment against the table and the diagram",
	Long: `Evaluates the assignment given as one value per variable, first by direct
lookup in the truth table and then by following the diagram from its root,
and fails if the two disagree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignment, err := parseAssignment(args)
		if err != nil {
			return err
		}

		table, d, err := load(cmd)
		if err != nil {
			return err
		}

		want, err := table.Evaluate(assignment)
		if err != nil {
			return err
		}
		got, path, err := d.Trace(assignment)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "table:    %s\n", want)
		fmt.Fprintf(out, "diagram:  %s\n", got)
		fmt.Fprintf(out, "path:     %s\n", strings.Join(path, " -> "))
		if want != got {
			return fmt.Errorf("table and diagram disagree on %v", assignment)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func parseAssignment(args []string) ([]int, error) {
	assignment := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for x%d: %w", arg, i, err)
		}
		assignment[i] = v
	}
	return assignment, nil
}
