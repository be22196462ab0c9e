// Package commands implements the volttrack CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
	"github.com/volttrack/backend/internal/integration/bundle"
)

// options are the flags shared by every subcommand.
type options struct {
	file       string
	multiplier float64
	horizon    int
	verbose    bool
}

func (o *options) params() valueobject.UsageParams {
	return valueobject.UsageParams{
		AnomalyMultiplier:     o.multiplier,
		ProjectionHorizonDays: o.horizon,
	}.Normalize()
}

// load reads and decodes the bundle file.
func (o *options) load() (*entity.BackupBundle, error) {
	if o.file == "" {
		return nil, fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(o.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", o.file, err)
	}
	b, err := bundle.Decode(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded bundle", "file", o.file, "records", len(b.Records), "currency", b.Currency)
	return b, nil
}

// NewRootCmd builds the volttrack command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	defaults := valueobject.DefaultUsageParams()

	root := &cobra.Command{
		Use:   "volttrack",
		Short: "Prepaid electricity usage analysis",
		Long: `volttrack reads a VoltTrack backup bundle (volttrack_data.json)
and prints usage summaries, anomalies and projections.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "volttrack_data.json", "Path to the backup bundle")
	root.PersistentFlags().Float64Var(&opts.multiplier, "multiplier", defaults.AnomalyMultiplier, "Anomaly threshold multiplier")
	root.PersistentFlags().IntVar(&opts.horizon, "horizon", defaults.ProjectionHorizonDays, "Projection horizon in days")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSummaryCmd(opts),
		newAnomaliesCmd(opts),
		newMonthCmd(opts),
		newDailyCmd(opts),
	)

	return root
}

func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func currencyOf(b *entity.BackupBundle) string {
	if b.Currency == "" {
		return "$"
	}
	return b.Currency
}
