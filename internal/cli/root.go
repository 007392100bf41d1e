// internal/cli/root.go
package taskplot

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/taskplot/internal/appconfig"
	"github.com/mwiater/taskplot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:           "taskplot",
	Short:         "taskplot: compare per-task results across experimental conditions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if flag := cmd.Flags().Lookup("debug"); flag != nil && !flag.Changed {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults).
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		return logging.Init(cfg.LogFile, cfg.Debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/taskplot.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "also append log output to this file")
	rootCmd.PersistentFlags().String("outputDir", "", "directory for generated charts")
	rootCmd.PersistentFlags().String("format", appconfig.DefaultFormat, "image format: eps, svg, pdf or png")
	rootCmd.PersistentFlags().String("priority", "last-wins", "ordering precedence: last-wins, first-wins, or table indices in increasing precedence (e.g. 2,0,1)")
	rootCmd.PersistentFlags().Float64("minSeparation", 0, "minimum gap between scatter markers of one task (0 = 2% of the value range)")
	rootCmd.PersistentFlags().Int("maxIterations", 0, "de-overlap iteration cap per task (0 = scaled to the number of conditions)")
	rootCmd.PersistentFlags().StringSlice("labels", nil, "legend label per input file, in argument order")

	// Bind flags to Viper keys (flags override config)
	for _, name := range []string{"debug", "logFile", "outputDir", "format", "priority", "minSeparation", "maxIterations", "labels"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded validates and reads the config file, if there is one, and sets safe
// defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("format", appconfig.DefaultFormat)
	viper.SetDefault("priority", "last-wins")

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		if err := appconfig.ValidateFile(cfgFile); err != nil {
			return err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the merged configuration, or defaults when no command has loaded it.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
