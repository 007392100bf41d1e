// internal/cli/plot.go
package taskplot

import (
	"github.com/spf13/cobra"
)

type plotOptions struct {
	outputPath   string
	style        string
	analysisPath string
	htmlPath     string
}

var plotOpts plotOptions

// plotCmd renders one comparative chart from a set of result files.
var plotCmd = &cobra.Command{
	Use:   "plot <kind> <file> [file...]",
	Short: "Render a comparative chart from TSV result files",
	Long: `Read one tab-separated result file per experimental condition, order the union of
tasks consistently across all of them, and draw the selected metric as grouped
horizontal bars or a de-overlapped scatter.

Kinds: speed (alias time), likelihood, probability (alias prob), total-speed,
iteration-speed.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(cmd.OutOrStdout(), *GetConfig(), plotOpts, args)
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOpts.outputPath, "output", "o", "", "chart path (default <outputDir>/<kind>.<format>)")
	plotCmd.Flags().StringVar(&plotOpts.style, "style", "", "override the kind's style: bar or scatter")
	plotCmd.Flags().StringVar(&plotOpts.analysisPath, "analysis-output", "", "optional path to write the ordering and values as JSON")
	plotCmd.Flags().StringVar(&plotOpts.htmlPath, "html-output", "", "optional path to write an HTML report with the chart inlined")

	rootCmd.AddCommand(plotCmd)
}
