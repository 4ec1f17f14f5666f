package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexpools/internal/board"
	"github.com/talgya/hexpools/internal/hex"
)

var (
	placeCount  int
	placeSize   int
	placeRotate bool
)

func init() {
	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "Generate a board and greedily place inventory pieces",
		Long: `Generate a board, draw random pieces, and merge each one at the
position that joins the most pools. With --rotate every orientation of
each piece is tried.

Examples:
  hexpools place
  hexpools place -n 10 --size 4 --rotate
  hexpools place --seed 7 --log-level debug`,
		RunE: runPlace,
	}

	placeCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (overrides config; 0 keeps it)")
	placeCmd.Flags().IntVar(&genRadius, "radius", 0, "Board radius (overrides config; 0 keeps it)")
	placeCmd.Flags().IntVarP(&placeCount, "number", "n", 0, "Number of pieces (overrides config)")
	placeCmd.Flags().IntVar(&placeSize, "size", 0, "Tiles per piece (overrides config)")
	placeCmd.Flags().BoolVar(&placeRotate, "rotate", false, "Try all six orientations of each piece")

	rootCmd.AddCommand(placeCmd)
}

func runPlace(cmd *cobra.Command, args []string) error {
	if placeCount > 0 {
		cfg.Pieces.Count = placeCount
	}
	if placeSize > 0 {
		cfg.Pieces.Size = placeSize
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	b, err := generateBoard()
	if err != nil {
		return err
	}
	b.OnDirty = func(e board.DirtyEvent) {
		slog.Debug("board dirty", "kind", e.Kind, "cells", len(e.Cells), "pools", e.Pools)
	}
	before := board.Summarize(b)

	// ── Pieces ────────────────────────────────────────────────────────
	rng := rand.New(rand.NewSource(cfg.Generation.Seed + 400))
	placed := 0
	for i := 0; i < cfg.Pieces.Count; i++ {
		piece, err := board.GeneratePiece(rng, cfg.Pieces.Size, palette)
		if err != nil {
			return err
		}

		best, steps, ok := bestPlacement(b, piece)
		if !ok {
			slog.Warn("no room for piece", "piece", i+1, "tiles", piece.Len())
			continue
		}
		if steps != 0 {
			if err := piece.Rotate(hex.Origin, steps); err != nil {
				return err
			}
		}
		if err := board.Merge(b, piece, best.Center, hex.Origin); err != nil {
			return fmt.Errorf("merge piece %d: %w", i+1, err)
		}
		placed++
		slog.Info("piece placed",
			"piece", i+1,
			"center", best.Center,
			"rotation", steps,
			"contacts", best.Contacts,
			"pools_joined", best.Pools,
			"score", fmt.Sprintf("%.2f", best.Score),
		)
	}

	// ── Report ────────────────────────────────────────────────────────
	if err := b.VerifyComponents(); err != nil {
		return fmt.Errorf("board failed verification: %w", err)
	}
	after := board.Summarize(b)
	printSummary(after)
	fmt.Printf("Placed %s of %s pieces; pools %d → %d\n",
		humanize.Comma(int64(placed)),
		humanize.Comma(int64(cfg.Pieces.Count)),
		before.Pools, after.Pools,
	)
	return nil
}

// bestPlacement searches every orientation allowed by --rotate and
// returns the top placement with the rotation that produced it.
func bestPlacement(b, piece *board.Board) (board.Placement, int, bool) {
	orientations := 1
	if placeRotate {
		orientations = 6
	}

	var best board.Placement
	bestSteps, found := 0, false
	for steps := 0; steps < orientations; steps++ {
		p := piece
		if steps != 0 {
			p = piece.Clone()
			if err := p.Rotate(hex.Origin, steps); err != nil {
				continue
			}
		}
		cands := board.FindPlacements(b, p, hex.Origin)
		if len(cands) == 0 {
			continue
		}
		if !found || cands[0].Score > best.Score {
			best, bestSteps, found = cands[0], steps, true
		}
	}
	return best, bestSteps, found
}
