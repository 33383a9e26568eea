package configloader

import "github.com/yaklabco/retrolog/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true overrides, so a file cannot unset a flag
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.Season != "" {
		result.Season = override.Season
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.ContinueOnError {
		result.ContinueOnError = true
	}
	if override.RetainIgnored {
		result.RetainIgnored = true
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
