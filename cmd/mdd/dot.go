package main

import (
	"github.com/spf13/cobra"

	"github.com/zzenonn/go-mdd/dot"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Export the diagram in Graphviz DOT format",
	Long: `Outputs the reduced diagram as a Graphviz digraph. Pipe it to 'dot -Tsvg' to
render it. Edges are styled and colored by the decision value they carry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := load(cmd)
		if err != nil {
			return err
		}

		g, err := dot.New(d, dotOptions(cmd)...)
		if err != nil {
			return err
		}
		_, err = g.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)

	dotCmd.Flags().String("font", "", "Font of the graph (default Times-Roman)")
	dotCmd.Flags().StringSlice("edge-style", nil, "Edge style per decision value, e.g. dashed,solid,dotted")
	dotCmd.Flags().StringSlice("edge-color", nil, "Edge color per decision value, e.g. red,black,blue")
	dotCmd.Flags().Bool("no-style", false, "Draw every edge with the default style")
	dotCmd.Flags().Bool("no-color", false, "Draw every edge with the default color")
	dotCmd.Flags().Bool("no-labels", false, "Omit decision values on edges")
	dotCmd.Flags().Bool("label-color", false, "Paint edge labels with the edge color")
}

func dotOptions(cmd *cobra.Command) []dot.Option {
	font, _ := cmd.Flags().GetString("font")
	styles, _ := cmd.Flags().GetStringSlice("edge-style")
	colors, _ := cmd.Flags().GetStringSlice("edge-color")
	noStyle, _ := cmd.Flags().GetBool("no-style")
	noColor, _ := cmd.Flags().GetBool("no-color")
	noLabels, _ := cmd.Flags().GetBool("no-labels")
	labelColor, _ := cmd.Flags().GetBool("label-color")

	opts := []dot.Option{
		dot.WithFont(font),
		dot.WithEdgeStyling(!noStyle),
		dot.WithEdgeColoring(!noColor),
		dot.WithLabels(!noLabels),
		dot.WithLabelColorMatchesEdge(labelColor),
	}
	for k, s := range styles {
		opts = append(opts, dot.WithEdgeStyle(k, s))
	}
	for k, c := range colors {
		opts = append(opts, dot.WithEdgeColor(k, c))
	}
	return opts
}
