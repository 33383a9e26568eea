package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/retrolog/internal/configloader"
	"github.com/yaklabco/retrolog/internal/logging"
	"github.com/yaklabco/retrolog/internal/ui/pretty"
	"github.com/yaklabco/retrolog/pkg/config"
	"github.com/yaklabco/retrolog/pkg/eventlog"
	"github.com/yaklabco/retrolog/pkg/reporter"
	"github.com/yaklabco/retrolog/pkg/runner"
)

// decodeFlags are shared by every command that decodes event files.
type decodeFlags struct {
	format          string
	jobs            int
	encoding        string
	extensions      []string
	season          string
	exclude         []string
	followSymlinks  bool
	continueOnError bool
	retainIgnored   bool
}

func addDecodeFlags(cmd *cobra.Command, flags *decodeFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, summary (default text)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files decoded in parallel (0 = auto)")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "event file encoding: utf-8, latin1")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "event file extensions to discover")
	cmd.Flags().StringVar(&flags.season, "season", "", "only decode files whose name starts with this season")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "walk into symlinked directories")
	cmd.Flags().BoolVarP(&flags.continueOnError, "keep-going", "k", false, "keep decoding other files when one fails")
	cmd.Flags().BoolVar(&flags.retainIgnored, "retain-ignored", false, "keep commentary and adjustment lines")
}

// toConfig maps flags onto a config layer. Unset flags stay zero so they
// do not override files or the environment.
func (f *decodeFlags) toConfig() *config.Config {
	return &config.Config{
		Jobs:            f.jobs,
		Encoding:        f.encoding,
		Extensions:      f.extensions,
		Season:          f.season,
		Exclude:         f.exclude,
		FollowSymlinks:  f.followSymlinks,
		ContinueOnError: f.continueOnError,
		RetainIgnored:   f.retainIgnored,
		Format:          config.OutputFormat(f.format),
	}
}

// loadConfig resolves the layered configuration for cmd.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := loadResult.Config

	// --debug wins over the configured level.
	if debug, _ := cmd.Flags().GetBool("debug"); !debug && cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return cfg, nil
}

// decode runs every file under paths through a fresh session. A non-nil
// result is returned whenever discovery succeeded, even if err is set.
func decode(cmd *cobra.Command, paths []string, cfg *config.Config, onGame runner.GameFunc) (*runner.Result, *session, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	sess := newSession()
	ctx := logging.WithFields(cmd.Context(), logging.FieldSession, sess.ID)
	logger := logging.FromContext(ctx)

	opts := runner.OptionsFromConfig(cfg)
	opts.Paths = paths
	opts.WorkingDir = workDir
	opts.Logger = logger

	run := runner.New(sess)
	run.OnGame = func(path string, game *eventlog.Game) error {
		if err := countAppearances(sess, game); err != nil {
			return err
		}
		if onGame != nil {
			return onGame(path, game)
		}
		return nil
	}

	logger.Debug("starting decode",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
		logging.FieldEncoding, opts.Encoding,
	)

	start := time.Now()
	result, err := run.Run(ctx, opts)
	if result != nil {
		logger.Debug("decode finished",
			logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
			logging.FieldFilesErrored, result.Stats.FilesErrored,
			logging.FieldGames, result.Stats.Games,
			logging.FieldPlayers, result.Stats.Players,
			logging.FieldDuration, time.Since(start),
		)
	}

	return result, sess, err
}

// finish turns a run's outcome into the command's error. File failures
// were already printed, so they collapse to ErrDecodeFailed.
func finish(result *runner.Result, runErr error) error {
	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrDecodeFailed
	}
	return runErr
}

// newReporter builds the reporter selected by cfg for cmd's outputs.
func newReporter(cmd *cobra.Command, cfg *config.Config) (reporter.Reporter, error) {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, _ := os.Getwd()
	out := cmd.OutOrStdout()

	return reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		TermWidth:   pretty.TerminalWidth(out),
		ShowSummary: true,
		WorkingDir:  workDir,
	})
}
