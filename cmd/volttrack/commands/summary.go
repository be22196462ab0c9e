package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volttrack/backend/internal/domain/usage"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print whole-history totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.load()
			if err != nil {
				return err
			}

			s := usage.ComputeSummary(b.Records)
			cur := currencyOf(b)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Records:       %d\n", s.RecordCount)
			fmt.Fprintf(out, "Total spent:   %s%s\n", cur, s.TotalSpent.StringFixed(2))
			fmt.Fprintf(out, "Total units:   %.2f kWh\n", s.TotalUnits)
			fmt.Fprintf(out, "Avg purchase:  %s%s\n", cur, s.AvgCost.StringFixed(2))
			fmt.Fprintf(out, "Last reading:  %.1f\n", s.LastReading)
			fmt.Fprintf(out, "Daily average: %.2f kWh\n", usage.AvgDailyUsage(b.Records))
			fmt.Fprintf(out, "Blended rate:  %s%.4f/kWh\n", cur, usage.BlendedRate(b.Records))
			return nil
		},
	}
}
