package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexpools/internal/board"
)

var (
	genSeed   int64
	genRadius int
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a board and report its pools",
		Long: `Generate a board from layered noise and print pool statistics.

Examples:
  hexpools gen
  hexpools gen --seed 42 --radius 20
  hexpools gen --config hexpools.yaml --log-level debug`,
		RunE: runGen,
	}

	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (overrides config; 0 keeps it)")
	genCmd.Flags().IntVar(&genRadius, "radius", 0, "Board radius (overrides config; 0 keeps it)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	b, err := generateBoard()
	if err != nil {
		return err
	}
	if err := b.VerifyComponents(); err != nil {
		return fmt.Errorf("generated board failed verification: %w", err)
	}
	printSummary(board.Summarize(b))
	return nil
}

// generateBoard applies flag overrides to the loaded config.
func generateBoard() (*board.Board, error) {
	if genSeed != 0 {
		cfg.Generation.Seed = genSeed
	}
	if genRadius != 0 {
		cfg.Board.Radius = genRadius
	}
	gen, err := cfg.GenConfig()
	if err != nil {
		return nil, err
	}

	slog.Info("generating board...", "radius", gen.Radius, "seed", gen.Seed)
	return board.Generate(gen, cfg.BoardOptions()...)
}

func printSummary(s board.Summary) {
	fmt.Printf("\n%s tiles in %s pools (mean %.2f, %s singletons)\n",
		humanize.Comma(int64(s.Tiles)),
		humanize.Comma(int64(s.Pools)),
		s.MeanSize,
		humanize.Comma(int64(s.Singletons)),
	)
	if s.Pools > 0 {
		fmt.Printf("Largest pool: #%d with %s tiles\n", s.Largest, humanize.Comma(int64(s.LargestSize)))
	}

	var sb strings.Builder
	for _, t := range board.Types() {
		if s.TilesByType[t] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %-8s %6s tiles %5s pools\n",
			board.TypeName(t),
			humanize.Comma(int64(s.TilesByType[t])),
			humanize.Comma(int64(s.PoolsByType[t])),
		)
	}
	fmt.Print(sb.String())
}
