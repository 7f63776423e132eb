package cli

import (
	"fmt"

	"github.com/sdejongh/hashdiff/internal/platform"
	"github.com/sdejongh/hashdiff/pkg/config"
	"github.com/sdejongh/hashdiff/pkg/ratelimit"
)

// validateDiffArgs checks the two positional paths. Only shape is validated
// here; whether a path exists and what kind it is surfaces during
// classification, like any other filesystem condition.
func validateDiffArgs(path1, path2 string) error {
	if err := platform.ValidatePath(path1); err != nil {
		return err
	}
	if err := platform.ValidatePath(path2); err != nil {
		return err
	}
	return nil
}

// validateDiffFlags validates flag values and loads the effective config
func validateDiffFlags() error {
	validOutputs := map[string]bool{"human": true, "json": true}
	if !validOutputs[diffFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", diffFlags.Output)
	}
	if !validOutputs[diffFlags.ReportFormat] {
		return fmt.Errorf("invalid report format: %s (valid: human, json)", diffFlags.ReportFormat)
	}

	if diffFlags.Bandwidth != "" {
		if _, err := ratelimit.ParseRate(diffFlags.Bandwidth); err != nil {
			return fmt.Errorf("invalid bandwidth limit: %w", err)
		}
	}

	if diffFlags.BufferSize != 0 && diffFlags.BufferSize < 1024 {
		return fmt.Errorf("buffer size must be at least 1024 bytes")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[diffFlags.LogFormat] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", diffFlags.LogFormat)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[diffFlags.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", diffFlags.LogLevel)
	}

	return nil
}

// loadConfig loads the configuration file, preferring the --config flag
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}
