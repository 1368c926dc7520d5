package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/adapters"
	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/export"
)

type MetadataCmd struct {
	sheet    string
	output   outputFlags
	explorer ExplorerFunc
	reporter *export.Reporter
}

func NewMetadataCmd(explorer ExplorerFunc, reporter *export.Reporter) *cobra.Command {
	mc := &MetadataCmd{explorer: explorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Show the months and years present in a sheet",
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.sheet, "sheet", "PSD", "Sheet to describe (PSD, Mikro or KOS)")
	mc.output.register(cmd)

	return cmd
}

func (mc *MetadataCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := mc.output.parse()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	explorer, err := mc.explorer()
	if err != nil {
		return err
	}
	meta, err := explorer.GetSheetMetadata(ctx, mc.sheet)
	if err != nil {
		return fmt.Errorf("failed to get sheet metadata: %w", err)
	}

	return mc.reporter.Metadata(format, adapters.MapSheetMetadata(meta))
}
