package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/retrolog/pkg/config"
)

// envVarPrefix is the prefix for all retrolog environment variables.
const envVarPrefix = "RETROLOG_"

// envVar describes one supported environment variable.
type envVar struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envVars lists the supported variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{
		suffix:      "LOG_LEVEL",
		description: "Log level: debug, info, warn or error",
		apply: func(cfg *config.Config, value string) error {
			cfg.LogLevel = value
			return nil
		},
	},
	{
		suffix:      "JOBS",
		description: "Number of files decoded in parallel (0 = auto)",
		apply: func(cfg *config.Config, value string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer %q", value)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	{
		suffix:      "ENCODING",
		description: "Event-file encoding: utf-8 or latin1",
		apply: func(cfg *config.Config, value string) error {
			cfg.Encoding = value
			return nil
		},
	},
	{
		suffix:      "EXTENSIONS",
		description: "Comma-separated list of event-file extensions",
		apply: func(cfg *config.Config, value string) error {
			cfg.Extensions = parseSliceValue(value)
			return nil
		},
	},
	{
		suffix:      "SEASON",
		description: "Only decode files of this season, e.g. 2018",
		apply: func(cfg *config.Config, value string) error {
			cfg.Season = value
			return nil
		},
	},
	{
		suffix:      "EXCLUDE",
		description: "Comma-separated list of exclude patterns",
		apply: func(cfg *config.Config, value string) error {
			cfg.Exclude = parseSliceValue(value)
			return nil
		},
	},
	{
		suffix:      "CONTINUE_ON_ERROR",
		description: "Keep going after a malformed file: true or false",
		apply: func(cfg *config.Config, value string) error {
			return setBool(&cfg.ContinueOnError, value)
		},
	},
	{
		suffix:      "RETAIN_IGNORED",
		description: "Keep commentary and adjustment lines: true or false",
		apply: func(cfg *config.Config, value string) error {
			return setBool(&cfg.RetainIgnored, value)
		},
	},
	{
		suffix:      "FORMAT",
		description: "Output format: text or json",
		apply: func(cfg *config.Config, value string) error {
			cfg.Format = config.OutputFormat(value)
			return nil
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RETROLOG_ (e.g., RETROLOG_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, v := range envVars {
		name := envVarPrefix + v.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := v.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func setBool(target *bool, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
	}
	*target = b
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, v := range envVars {
		out[envVarPrefix+v.suffix] = v.description
	}
	return out
}

// EnvVarNames returns the supported environment variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, v := range envVars {
		names = append(names, envVarPrefix+v.suffix)
	}
	slices.Sort(names)
	return names
}
