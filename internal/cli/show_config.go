// internal/cli/show_config.go
package taskplot

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/taskplot/internal/appconfig"
	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout(), *GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}

func runShowConfig(w io.Writer, cfg appconfig.Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(w, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", cfg.ConfigPath)
	}

	width, height := cfg.FigureSize()
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintf(w, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(w, "  Log File:       %s\n", cfg.LogFile)
	fmt.Fprintf(w, "  Output Dir:     %s\n", cfg.OutputDir)
	fmt.Fprintf(w, "  Format:         %s\n", cfg.OutputFormat())
	fmt.Fprintf(w, "  Figure Size:    %gx%g in\n", width, height)
	fmt.Fprintf(w, "  Priority:       %s\n", cfg.Priority)
	fmt.Fprintf(w, "  Min Separation: %g\n", cfg.MinSeparation)
	fmt.Fprintf(w, "  Max Iterations: %d\n", cfg.MaxIterations)
	fmt.Fprintf(w, "  Labels:         %v\n", cfg.Labels)

	if cfg.Debug {
		fmt.Fprintln(w)
		pp.Fprintln(w, cfg)
	}
}
