package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zzenonn/go-mdd"
)

// input is a function as read from the command line or a YAML file.
// Values are kept as strings so any printable result domain can be used.
type input struct {
	Domains []int    `yaml:"domains"`
	Values  []string `yaml:"values"`
}

// readInputFile loads an input from a YAML file.
func readInputFile(path string) (*input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var in input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &in, nil
}

// loadInput reads the file given by --file, if any, and lets --domains and
// --values override its fields.
func loadInput(cmd *cobra.Command) (*input, error) {
	in := &input{}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		var err error
		if in, err = readInputFile(path); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("domains") {
		in.Domains, _ = cmd.Flags().GetIntSlice("domains")
	}
	if cmd.Flags().Changed("values") {
		in.Values, _ = cmd.Flags().GetStringSlice("values")
	}

	if len(in.Domains) == 0 {
		return nil, errors.New("no function given: use --domains and --values, or --file")
	}
	return in, nil
}

func newTable(in *input) (*gomdd.Table[string], error) {
	table, err := gomdd.NewTable(in.Domains, in.Values)
	if err != nil {
		return nil, fmt.Errorf("invalid function: %w", err)
	}
	return table, nil
}

// load reads the input of cmd and builds both its table and its diagram.
func load(cmd *cobra.Command) (*gomdd.Table[string], *gomdd.Diagram[string], error) {
	in, err := loadInput(cmd)
	if err != nil {
		return nil, nil, err
	}

	table, err := newTable(in)
	if err != nil {
		return nil, nil, err
	}

	maxNodes, _ := cmd.Flags().GetInt("max-nodes")
	logger := newLogger(cmd)
	defer logger.Sync()

	d, err := table.Diagram(gomdd.WithLogger(logger), gomdd.WithMaxNodes(maxNodes))
	if err != nil {
		return nil, nil, err
	}
	return table, d, nil
}
