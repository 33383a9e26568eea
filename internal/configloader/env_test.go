package configloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/retrolog/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RETROLOG_JOBS", "6")
	t.Setenv("RETROLOG_ENCODING", "latin1")
	t.Setenv("RETROLOG_EXTENSIONS", ".EVA, .EVN ,")
	t.Setenv("RETROLOG_CONTINUE_ON_ERROR", "1")
	t.Setenv("RETROLOG_SEASON", "")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, 6, cfg.Jobs)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, []string{".EVA", ".EVN"}, cfg.Extensions)
	assert.True(t, cfg.ContinueOnError)
	assert.Empty(t, cfg.Season)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"RETROLOG_JOBS":           "many",
		"RETROLOG_RETAIN_IGNORED": "sometimes",
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)

			err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), name+": "), err.Error())
		})
	}
}

func TestLoad_EnvBetweenFileAndCLI(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir+"/.retrolog.yml", "jobs: 2\nseason: \"2016\"\n")
	t.Setenv("RETROLOG_JOBS", "4")
	t.Setenv("RETROLOG_SEASON", "2017")

	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		CLIConfig:          &config.Config{Season: "2018"},
	}

	result, err := Load(t.Context(), opts)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Config.Jobs)
	assert.Equal(t, "2018", result.Config.Season)
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	names := EnvVarNames()

	require.Len(t, names, len(vars))
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, envVarPrefix))
		assert.NotEmpty(t, vars[name])
	}
	assert.Contains(t, names, "RETROLOG_ENCODING")
}
