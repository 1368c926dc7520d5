package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/aging-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/aging-atlas/pkg/services/aging"
	"github.com/de-tools/aging-atlas/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	newExplorer func(settings *config.Settings) aging.Explorer
	reporter    *export.Reporter
	logOutput   io.Writer
	rootCmd     *cobra.Command

	cfgPath     string
	currentPath string
	legacyPath  string
	explorer    aging.Explorer
}

// Options contain configuration for the CLI
type Options struct {
	// NewExplorer builds the explorer from resolved settings; nil reads the workbooks.
	NewExplorer func(settings *config.Settings) aging.Explorer
	Output      io.Writer
	LogOutput   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.NewExplorer == nil {
		opts.NewExplorer = WorkbookExplorer
	}

	cli := &CLI{
		newExplorer: opts.NewExplorer,
		reporter:    export.NewReporter(opts.Output),
		logOutput:   opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

// WorkbookExplorer serves queries from the workbooks named in settings.
func WorkbookExplorer(settings *config.Settings) aging.Explorer {
	return aging.NewExplorer(aging.NewCache(aging.SourceLoader(aging.Sources{
		CurrentPath: settings.Data.CurrentPath,
		LegacyPath:  settings.Data.LegacyPath,
	})))
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "aging",
		Short:             "Portfolio aging explorer",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML settings file")
	cmd.PersistentFlags().StringVar(&cli.currentPath, "current", "", "Path to the current multi-month workbook")
	cmd.PersistentFlags().StringVar(&cli.legacyPath, "legacy", "", "Path to the legacy single-month workbook")

	cmd.AddCommand(commands.NewProductsCmd(cli.resolveExplorer, cli.reporter))
	cmd.AddCommand(commands.NewMetadataCmd(cli.resolveExplorer, cli.reporter))
	cmd.AddCommand(commands.NewSeriesCmd(cli.resolveExplorer, cli.reporter))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}
	if cli.currentPath != "" {
		settings.Data.CurrentPath = cli.currentPath
	}
	if cli.legacyPath != "" {
		settings.Data.LegacyPath = cli.legacyPath
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logOutput}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cli.explorer = cli.newExplorer(settings)
	return nil
}

func (cli *CLI) resolveExplorer() (aging.Explorer, error) {
	if cli.explorer == nil {
		return nil, errors.New("explorer is not initialized")
	}
	return cli.explorer, nil
}
