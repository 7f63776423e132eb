package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sdejongh/hashdiff/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "hashdiff <path1> <path2>",
		Short: "Compare two files or directory trees by size and MD5 hash",
		Long: `hashdiff compares two filesystem paths and reports content differences.
Given two files it compares their size and MD5 digest; given two directories
it matches files by relative path and reports files unique to either side
and files whose content differs.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.ExactArgs(2),
		RunE:          cli.RunDiff,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)
	cli.AddDiffFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewVersionCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())

	return rootCmd.Execute()
}
