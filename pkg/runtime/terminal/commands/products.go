package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/models/api"
	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/export"
)

type ProductsCmd struct {
	sheet    string
	output   outputFlags
	explorer ExplorerFunc
	reporter *export.Reporter
}

func NewProductsCmd(explorer ExplorerFunc, reporter *export.Reporter) *cobra.Command {
	pc := &ProductsCmd{explorer: explorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products of a sheet in row order",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.sheet, "sheet", "PSD", "Sheet to list (PSD, Mikro or KOS)")
	pc.output.register(cmd)

	return cmd
}

func (pc *ProductsCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := pc.output.parse()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	explorer, err := pc.explorer()
	if err != nil {
		return err
	}
	products, err := explorer.ListProducts(ctx, pc.sheet)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	return pc.reporter.Products(format, api.Products{Products: products})
}
