package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/aging-atlas/pkg/services/aging"
)

const commandTimeout = 60 * time.Second

// ExplorerFunc hands out the explorer once the root command has resolved its settings.
type ExplorerFunc func() (aging.Explorer, error)

type outputFlags struct {
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "o", string(export.FormatTable), "Output format: table, json or yaml")
}

func (o *outputFlags) parse() (export.Format, error) {
	return export.ParseFormat(o.format)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, commandTimeout)
}
