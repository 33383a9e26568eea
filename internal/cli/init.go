package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/retrolog/internal/logging"
	"github.com/yaklabco/retrolog/pkg/config"
	"github.com/yaklabco/retrolog/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFile is the project file written by init.
const defaultConfigFile = ".retrolog.yml"

type initFlags struct {
	force    bool
	resolved bool
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a retrolog configuration file",
		Long: `Create a .retrolog.yml configuration file in the current directory with
every option set to its default and documented. With --force, an existing
file is kept as a .bak copy before it is replaced. With --resolved, the
file holds the settings currently in effect from every config layer instead.`,
		Example: `  retrolog init                      # Create .retrolog.yml
  retrolog init --resolved --force   # Freeze the effective settings
  retrolog init --output data/.retrolog.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.resolved, "resolved", false, "write the effective configuration instead of the template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content := config.Template()
	if flags.resolved {
		cfg, err := loadConfig(cmd, &config.Config{})
		if err != nil {
			return err
		}
		content, err = cfg.ToYAMLWithHeader("# retrolog configuration (resolved)")
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		backup, err := fsutil.Backup(cmd.Context(), absPath)
		if err != nil {
			return err
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output, "backup", backup)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)

	return nil
}
