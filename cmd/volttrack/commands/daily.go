package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func newDailyCmd(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print estimated usage per calendar day",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseOptionalDate("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseOptionalDate("to", to)
			if err != nil {
				return err
			}

			b, err := opts.load()
			if err != nil {
				return err
			}

			daily := usage.BuildDailyMap(b.Records, opts.params())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tUSAGE\tCOST\t")
			for _, e := range daily.Range(fromDate, toDate) {
				marker := ""
				if e.IsProjected {
					marker = "projected"
				}
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%s\n", e.Date, e.Usage, e.Cost, marker)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD)")
	return cmd
}

func parseOptionalDate(flag, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(valueobject.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD", flag)
	}
	return t, nil
}
