// Package main implements the qec CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qec/internal/config"
	"qec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "qec [flags] [input...]",
	Short:        "Quantum engine compiler",
	Long:         "qec compiles quantum programs into executable modules for registered target systems",
	Args:         cobra.ArbitraryArgs,
	RunE:         compileExecution,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringP("output", "o", config.StdStream, "output file, - means stdout")
	rootCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	rootCmd.Flags().Int("jobs", 0, "number of parallel compilations (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
