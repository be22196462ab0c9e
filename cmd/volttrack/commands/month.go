package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func newMonthCmd(opts *options) *cobra.Command {
	now := time.Now().UTC()
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the weekly breakdown of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}
			if year < 1970 || year > 9999 {
				return fmt.Errorf("--year must be between 1970 and 9999")
			}

			b, err := opts.load()
			if err != nil {
				return err
			}

			daily := usage.BuildDailyMap(b.Records, opts.params())
			view := usage.BuildMonthView(daily, year, time.Month(month))
			cur := currencyOf(b)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %d\n\n", time.Month(month), year)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WEEK\tFROM\tTO\tUSAGE\tCOST\tDAYS")
			for _, w := range view.Weeks {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%s%.2f\t%d\n",
					w.WeekNumber,
					w.StartDate.Format(valueobject.DateLayout),
					w.EndDate.Format(valueobject.DateLayout),
					w.TotalUsage, cur, w.TotalCost, w.DaysInSelectedMonth)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nMonth total: %.1f kWh, %s%.2f\n", view.MonthTotalUsage, cur, view.MonthTotalCost)
			if view.ProjectedDayCount > 0 {
				fmt.Fprintf(out, "Includes %d projected days at %.2f kWh/day\n",
					view.ProjectedDayCount, usage.AvgDailyUsage(b.Records))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", now.Year(), "Calendar year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Calendar month (1-12)")
	return cmd
}
