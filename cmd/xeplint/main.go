package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"xeplint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "xeplint",
	Short: "Linter for XEP-style XML documents",
	Long:  `xeplint analyses XEP documents and reports structural problems as ordered diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "", "output format (text|json|summary)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the on-disk result cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
