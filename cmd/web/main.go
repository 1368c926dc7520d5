package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/aging-atlas/pkg/server"
	"github.com/de-tools/aging-atlas/pkg/services/aging"
	"github.com/de-tools/aging-atlas/pkg/services/config"
)

var (
	cfgPath string
	preload bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the aging dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML settings file")
	rootCmd.Flags().BoolVar(&preload, "preload", false, "Build the dataset before accepting requests")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cache := aging.NewCache(aging.SourceLoader(aging.Sources{
		CurrentPath: settings.Data.CurrentPath,
		LegacyPath:  settings.Data.LegacyPath,
	}))
	if preload {
		if _, err := cache.Dataset(ctx); err != nil {
			return fmt.Errorf("failed to build dataset: %w", err)
		}
	}

	logger.Info().
		Str("current", settings.Data.CurrentPath).
		Str("legacy", settings.Data.LegacyPath).
		Msg("workbook sources configured")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Explorer: aging.NewExplorer(cache),
		},
	})

	return webAPI.Start()
}
