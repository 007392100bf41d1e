package taskplot

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mwiater/taskplot/internal/ranking"
	"github.com/spf13/cobra"
)

// kindsCmd implements 'list kinds', which prints the supported plot kinds.
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported plot kinds",
	Run: func(cmd *cobra.Command, args []string) {
		runListKinds(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(kindsCmd)
}

func runListKinds(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCOLUMN\tTRANSFORM\tDEFAULT\tSTYLE\tFIELDS")
	for _, k := range ranking.Kinds() {
		style := "bar"
		if k.Scatter {
			style = "scatter"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%g\t%s\t%d\n", k.Name, k.Column, k.Transform, k.Default, style, k.Arity)
	}
	_ = tw.Flush()
}
