// Command hexpools generates hex boards and places pieces on them,
// reporting how tiles group into pools.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/hexpools/internal/config"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hexpools",
	Short: "Hex board pool engine",
	Long: `hexpools builds hex boards, groups same-colored adjacent tiles into
pools, and places inventory pieces where they grow those pools most.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		lvl, err := cfg.SlogLevel()
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: lvl,
		}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("hexpools failed", "error", err)
		os.Exit(1)
	}
}
