package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/hashdiff/internal/platform"
	"github.com/sdejongh/hashdiff/pkg/compare"
	"github.com/sdejongh/hashdiff/pkg/config"
	"github.com/sdejongh/hashdiff/pkg/diff"
	"github.com/sdejongh/hashdiff/pkg/logging"
	"github.com/sdejongh/hashdiff/pkg/output"
	"github.com/sdejongh/hashdiff/pkg/ratelimit"
)

// RunDiff is the root command handler: compare the two positional paths
// and print the report. The exit status is 0 whenever a comparison ran,
// whether or not differences were found.
func RunDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path1 := platform.NormalizePath(args[0])
	path2 := platform.NormalizePath(args[1])

	if err := validateDiffArgs(path1, path2); err != nil {
		return err
	}
	if err := validateDiffFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	comparator := compare.NewMD5Comparator(cfg.Performance.BufferSize)

	if cfg.Performance.BandwidthLimit > 0 {
		limiter := ratelimit.NewLimiter(cfg.Performance.BandwidthLimit)
		comparator.SetReaderWrapper(func(rc io.ReadCloser) io.ReadCloser {
			return ratelimit.NewReadCloser(ctx, rc, limiter)
		})
	}

	var progress *output.HashProgress
	if cfg.Output.Progress && !cfg.Output.Quiet {
		progress = output.NewHashProgress(os.Stderr)
		comparator.SetProgressCallback(progress.Callback())
	}

	diag := io.Writer(os.Stderr)
	if cfg.Output.Quiet {
		diag = io.Discard
	}

	engine := diff.NewEngine(comparator, logger, diag)
	report, err := engine.Run(ctx, path1, path2)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	formatter := output.New(cfg.Output.Format)
	if formatter == nil {
		return fmt.Errorf("unknown output format: %s", cfg.Output.Format)
	}
	if err := formatter.Write(os.Stdout, report); err != nil {
		return err
	}

	if diffFlags.Report != "" {
		if err := output.WriteReportFile(report, diffFlags.Report, diffFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
	}

	if globalFlags.Verbose && !cfg.Output.Quiet {
		output.WriteSummary(os.Stderr, report)
	}

	return nil
}

// applyFlagsToConfig overrides config values with explicitly set flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output.Format = diffFlags.Output
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = diffFlags.Progress
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
	}
	if flags.Changed("buffer-size") {
		cfg.Performance.BufferSize = diffFlags.BufferSize
	}
	if flags.Changed("bandwidth") {
		// Already validated
		limit, _ := ratelimit.ParseRate(diffFlags.Bandwidth)
		cfg.Performance.BandwidthLimit = limit
	}
	if flags.Changed("log-file") {
		cfg.Logging.Enabled = true
		cfg.Logging.File = diffFlags.LogFile
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = diffFlags.LogFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = diffFlags.LogLevel
	}
}

// buildLogger creates the configured logger, or a null logger when
// logging is disabled
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 3,
	})
}
