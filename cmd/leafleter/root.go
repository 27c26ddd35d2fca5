package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter"
	"github.com/dkovordanyi/leafleter/internal/platform"
	"github.com/dkovordanyi/leafleter/pkg/core"
	"github.com/dkovordanyi/leafleter/pkg/osm"
	"github.com/dkovordanyi/leafleter/pkg/resolve"
)

var (
	verbose    bool
	configPath string
	dataPath   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leafleter",
	Short: "A canvassing and leaflet-distribution planner backed by a single JSON document",
	Long: `Leafleter manages streets grouped by municipality, their house numbers,
free-text notes, and distribution sectors. All state lives in one JSON file
on local disk; house numbers for open-ended streets are resolved from
OpenStreetMap or entered manually.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default leafleter.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Document file (overrides config)")
}

// loadConfig layers the --data flag over the YAML config over the defaults.
func loadConfig() platform.FileConfig {
	cfg, err := platform.LoadFileConfig(configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}
	return cfg
}

func openService() (*core.Service, platform.FileConfig) {
	cfg := loadConfig()
	svc, err := leafleter.New(cfg.DataFile,
		leafleter.WithLogger(slog.Default()),
		leafleter.WithCollation(cfg.Collation),
	)
	if err != nil {
		fatal("Failed to open document", err)
	}
	return svc, cfg
}

// openResolver wires the resolver with the Overpass-backed lookup source.
func openResolver(svc *core.Service, cfg platform.FileConfig) *resolve.Resolver {
	source := osm.NewOverpassClient(cfg.OverpassURL, cfg.LookupTimeout())
	return leafleter.NewResolver(svc.Store(),
		leafleter.WithHouseNumberSource(source),
		leafleter.WithLogger(slog.Default()),
	)
}
