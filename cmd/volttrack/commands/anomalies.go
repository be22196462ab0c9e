package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func newAnomaliesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "anomalies",
		Short: "List purchase intervals with unusually high usage",
		Long: `Flags every interval between purchases whose usage exceeds the
average interval usage times --multiplier. A flagged interval usually
means a purchase was not logged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.load()
			if err != nil {
				return err
			}

			anomalies := usage.DetectAnomalies(b.Records, opts.params())
			out := cmd.OutOrStdout()
			if len(anomalies) == 0 {
				fmt.Fprintln(out, "No anomalies detected.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tUSAGE\tAVERAGE\tTHRESHOLD")
			for _, a := range anomalies {
				fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%.1f\n",
					valueobject.DateKeyOf(a.Start), valueobject.DateKeyOf(a.End),
					a.Usage, a.Average, a.Threshold)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if latest := usage.LatestAnomaly(anomalies); latest != nil {
				fmt.Fprintf(out, "\nLatest: %s to %s, %.1f kWh used (limit %.1f)\n",
					valueobject.DateKeyOf(latest.Start), valueobject.DateKeyOf(latest.End),
					latest.Usage, latest.Threshold)
			}
			return nil
		},
	}
}
