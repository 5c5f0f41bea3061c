package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "mdd",
	Short: "mdd builds and inspects multi-valued decision diagrams",
	Long: `mdd reads a function given as a truth vector over finite domains, reduces it
to a canonical multi-valued decision diagram and prints, evaluates or renders it.

The function is read from --domains and --values, or from a YAML file:

  domains: [2, 2, 3]
  values: [0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 2, 2]`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().IntSlice("domains", nil, "Domain size of each variable, e.g. 2,2,3")
	rootCmd.PersistentFlags().StringSlice("values", nil, "Truth vector in mixed-radix order, e.g. 0,0,1,1")
	rootCmd.PersistentFlags().StringP("file", "f", "", "YAML file holding domains and values")
	rootCmd.PersistentFlags().Int("max-nodes", 0, "Abort when the diagram needs more nodes (0 means no limit)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log construction details to stderr")
}

// newLogger returns a console logger at debug level in verbose mode and a
// JSON logger at info level otherwise. Both write to the command's stderr.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	sink := zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))
	if verbose {
		return zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			sink,
			zap.DebugLevel,
		))
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.InfoLevel,
	))
}
