package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/adapters"
	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/export"
)

type SeriesCmd struct {
	query    domain.SeriesQuery
	output   outputFlags
	explorer ExplorerFunc
	reporter *export.Reporter
}

func NewSeriesCmd(explorer ExplorerFunc, reporter *export.Reporter) *cobra.Command {
	sc := &SeriesCmd{explorer: explorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the monthly series of a product bucket",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.query.Sheet, "sheet", "PSD", "Sheet (PSD, Mikro or KOS)")
	cmd.Flags().StringVar(&sc.query.Product, "product", "", "Product label")
	cmd.Flags().StringVar(&sc.query.Bucket, "bucket", "1-5", "Aging bucket (1-5, 30-90 or 90+)")
	cmd.Flags().IntVar(&sc.query.YearFrom, "year-from", 2024, "First year of the window")
	cmd.Flags().IntVar(&sc.query.YearTo, "year-to", 2026, "Last year of the window")
	cmd.Flags().IntVar(&sc.query.MonthFrom, "month-from", 1, "First month within the first year")
	cmd.Flags().IntVar(&sc.query.MonthTo, "month-to", 12, "Last month within the last year")
	sc.output.register(cmd)

	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := sc.output.parse()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	explorer, err := sc.explorer()
	if err != nil {
		return err
	}
	series, err := explorer.GetSeries(ctx, sc.query)
	if err != nil {
		return fmt.Errorf("failed to get series: %w", err)
	}

	return sc.reporter.Series(format, adapters.MapSeries(series))
}
