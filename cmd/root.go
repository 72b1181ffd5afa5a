// Package cmd contains the CLI of the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newRootCmd builds the root command. Statistics are collected for every
// package given as a positional argument.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npm-pkg-stats <package>...",
		Short: "Shows npm and GitHub statistics for npm packages",
		Long: `npm-pkg-stats gathers size, dependency and download statistics from npm
and repository statistics (stars, issues, pull requests, license, last release)
from GitHub, and prints them as a table.

A single package is printed as a two-column table. Several packages are printed
as a comparison table with one row per package.

A GitHub token must be provided in the NPM_PKG_STATS_TOKEN environment variable.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runStats,
	}

	// Add a persistent flag for verbose output.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or json")
	cmd.Flags().Bool("no-color", false, "Disable colored table headers (color is only used on a terminal)")
	return cmd
}

// Execute runs the root command with the process arguments.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newLogger creates a logger writing to w. Debug messages are only shown
// when verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
