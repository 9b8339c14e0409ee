package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/config"
)

var (
	cfgPath    string
	dbOverride string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dugout",
	Short: "Youth baseball stats and coaching feedback tool",
	Long: "Load GameChanger season CSV exports, normalize and derive player metrics,\n" +
		"and generate team tables, per-player trends, skill profiles, and rule-based\n" +
		"coaching feedback.",
	SilenceUsage:      true,
	PersistentPreRunE: initRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config (default $DUGOUT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&dbOverride, "db", "", "path to SQLite stats database (overrides config)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

func initRoot(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbOverride != "" {
		cfg.DBPath = dbOverride
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}
