package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/retrolog/pkg/config"
)

// isolated returns options that only look at dir and nothing outside it.
func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Encoding != config.EncodingUTF8 {
		t.Errorf("expected encoding %q, got %q", config.EncodingUTF8, result.Config.Encoding)
	}
	if len(result.Config.Extensions) != 4 {
		t.Errorf("expected 4 default extensions, got %v", result.Config.Extensions)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".retrolog.yml"), `
encoding: latin1
season: "1961"
jobs: 3
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Encoding != config.EncodingLatin1 {
		t.Errorf("expected encoding latin1, got %q", result.Config.Encoding)
	}
	if result.Config.Season != "1961" {
		t.Errorf("expected season 1961, got %q", result.Config.Season)
	}
	if result.Config.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", result.Config.Jobs)
	}
	if result.Config.LogLevel != config.LogLevelWarn {
		t.Errorf("expected default log level to survive, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFromParent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "retrolog.yaml"), "retain_ignored: true\n")
	nested := filepath.Join(root, "1961", "events")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.Config.RetainIgnored {
		t.Error("expected retain_ignored from parent directory config")
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".retrolog.yml"), "jobs: 1\n")
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %s", path)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".retrolog.yml"), "log_level: info\nseason: \"2017\"\n")
	custom := filepath.Join(tmpDir, "custom.yml")
	writeFile(t, custom, "season: \"2018\"\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = custom

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Season != "2018" {
		t.Errorf("expected explicit season 2018, got %q", result.Config.Season)
	}
	if result.Config.LogLevel != config.LogLevelInfo {
		t.Errorf("expected project log level info, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != custom {
		t.Errorf("expected project then explicit file, got %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".retrolog.yml"), "jobs: 2\nencoding: latin1\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{Jobs: 8, ContinueOnError: true, Format: config.FormatJSON}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}
	if result.Config.Encoding != config.EncodingLatin1 {
		t.Errorf("expected encoding from file, got %q", result.Config.Encoding)
	}
	if !result.Config.ContinueOnError {
		t.Error("expected continue_on_error true (CLI override)")
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".retrolog.yml")
	writeFile(t, configPath, "encoding: ebcdic\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	if err == nil {
		t.Fatal("expected error for invalid encoding")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if validationErr.Field != "encoding" || validationErr.FilePath != configPath {
		t.Errorf("unexpected validation error: %v", validationErr)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".retrolog.yml"), "jobs: [1, 2\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "load project config") {
		t.Errorf("error should name the layer: %v", err)
	}
}

func TestLoad_SeasonWarning(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".retrolog.yml"), "season: \"18\"\n")

	result, err := Load(context.Background(), isolated(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "four-digit year") {
		t.Errorf("unexpected warning: %s", result.Warnings[0])
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(t.TempDir())); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Extensions: []string{".EVN"}, Season: "2001"},
		&config.Config{Season: "2002", RetainIgnored: true},
	)

	if merged.Season != "2002" {
		t.Errorf("expected last season to win, got %q", merged.Season)
	}
	if len(merged.Extensions) != 1 || merged.Extensions[0] != ".EVN" {
		t.Errorf("expected extensions replaced, got %v", merged.Extensions)
	}
	if !merged.RetainIgnored {
		t.Error("expected retain_ignored true")
	}
	if merged.Encoding != config.EncodingUTF8 {
		t.Errorf("expected default encoding kept, got %q", merged.Encoding)
	}

	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}
