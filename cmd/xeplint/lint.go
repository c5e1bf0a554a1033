package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xeplint/internal/config"
	"xeplint/internal/driver"
	"xeplint/internal/msgfmt"
)

var lintCmd = &cobra.Command{
	Use:   "lint FILE...",
	Short: "Lint one or more XEP documents",
	Long:  `Lint parses each document, runs every enabled check and prints the accumulated findings in deterministic order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.LoadFromDir(".")
	if err != nil {
		return err
	}

	format, err := stringFlagOr(cmd, "format", cfg.Output.Format)
	if err != nil {
		return err
	}
	switch format {
	case "text", "json", "summary":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	colorMode, err := stringFlagOr(cmd, "color", cfg.Output.Color)
	if err != nil {
		return err
	}
	colorize, err := resolveColor(colorMode)
	if err != nil {
		return err
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = cfg.Lint.Jobs
	}

	noCache, err := cmd.Root().PersistentFlags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	opts := driver.Options{
		Disable: cfg.Lint.Disable,
		Jobs:    jobs,
	}
	// JSON needs the full record structure, which cached entries do not keep
	if !noCache && format != "json" {
		cache, err := driver.OpenCache("xeplint")
		if err == nil {
			opts.Cache = cache
		}
	}

	results, err := driver.LintAll(context.Background(), args, opts)
	if err != nil {
		return err
	}

	if err := writeResults(results, format, colorize); err != nil {
		return err
	}

	for _, r := range results {
		if r.HasErrors() {
			os.Exit(1)
		}
	}
	return nil
}

func writeResults(results []*driver.Result, format string, colorize bool) error {
	switch format {
	case "json":
		for _, r := range results {
			if err := msgfmt.JSON(os.Stdout, r.Store); err != nil {
				return err
			}
		}
	case "summary":
		return msgfmt.Summary(os.Stdout, results, colorize)
	default:
		for _, r := range results {
			if colorize && r.Store != nil {
				if err := msgfmt.Text(os.Stdout, r.Store, true); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprint(os.Stdout, r.Rendered); err != nil {
				return err
			}
		}
	}
	return nil
}

// stringFlagOr returns the flag value when set, or fallback from the config.
func stringFlagOr(cmd *cobra.Command, name, fallback string) (string, error) {
	value, err := cmd.Root().PersistentFlags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

func resolveColor(mode string) (bool, error) {
	switch mode {
	case "auto", "":
		return isTerminal(os.Stdout), nil
	case "on":
		color.NoColor = false
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}
