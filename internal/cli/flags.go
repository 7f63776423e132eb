package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/hashdiff/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"print a run summary to stderr after the report",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-report output",
	)
}

// DiffFlags holds the root diff command flags
type DiffFlags struct {
	Output       string
	Report       string
	ReportFormat string
	Progress     bool
	Bandwidth    string
	BufferSize   int
	LogFile      string
	LogFormat    string
	LogLevel     string
}

var diffFlags DiffFlags

// AddDiffFlags adds the comparison flags to the root command
func AddDiffFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&diffFlags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().StringVar(&diffFlags.Report, "report", "", "write the diff report to a file")
	cmd.Flags().StringVar(&diffFlags.ReportFormat, "report-format", "human", "report file format: human, json")
	cmd.Flags().BoolVar(&diffFlags.Progress, "progress", false, "show a progress bar while hashing")
	cmd.Flags().StringVarP(&diffFlags.Bandwidth, "bandwidth", "b", "", "read throughput limit (e.g., \"10M\", \"1G\")")
	cmd.Flags().IntVar(&diffFlags.BufferSize, "buffer-size", 0, "hash chunk size in bytes (default: 4096)")

	// Logging flags
	cmd.Flags().StringVar(&diffFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&diffFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&diffFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}
