package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
)

var (
	flagPullX     float64
	flagPullY     float64
	flagTraceFrom string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the launch for a pull",
	Long: `Computes the launch force and the trajectory preview for pulling the
first projectile of a level by (pull-x, pull-y) from the sling anchor.
The pull is clamped the same way a mouse drag is.

Examples:
  slingshot trace --pull-x -80 --pull-y 40
  slingshot trace --level 02-kings-keep --pull-x -100`,
	Args: cobra.NoArgs,
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().Float64Var(&flagPullX, "pull-x", -80, "Horizontal pull from the anchor (negative is backwards)")
	traceCmd.Flags().Float64Var(&flagPullY, "pull-y", 40, "Vertical pull from the anchor (positive is down)")
	traceCmd.Flags().StringVar(&flagTraceFrom, "level", "", "Level ID (default: first level)")
}

func runTrace(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	lvls := loadLevels()

	lvl := lvls[0]
	if flagTraceFrom != "" {
		var err error
		lvl, err = levels.Find(lvls, flagTraceFrom)
		if err != nil {
			if errors.Is(err, levels.ErrLevelNotFound) {
				fmt.Fprintln(os.Stderr, "Run 'slingshot levels' to see available levels.")
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	aim := slingshot.AimFor(cfg, lvl, core.V(flagPullX, flagPullY))

	fmt.Printf("Level:       %s (%s)\n", lvl.ID, lvl.Name)
	fmt.Printf("Anchor:      (%.1f, %.1f)\n", lvl.Anchor.X, lvl.Anchor.Y)
	fmt.Printf("Projectile:  %s, mass %.4f\n", aim.Projectile, aim.Mass)
	fmt.Printf("Position:    (%.1f, %.1f)  pull %.1f\n", aim.Pos.X, aim.Pos.Y, aim.Pos.Dist(lvl.Anchor))
	fmt.Printf("Force:       (%.4f, %.4f)\n", aim.Force.X, aim.Force.Y)
	fmt.Printf("Velocity:    (%.3f, %.3f) units/tick\n", aim.Velocity.X, aim.Velocity.Y)
	fmt.Println()
	fmt.Printf("Preview (every %d ticks):\n", cfg.Sling.PreviewStride)
	for i, p := range aim.Preview {
		fmt.Printf("  %2d  t=%3d  (%7.1f, %7.1f)\n", i+1, (i+1)*cfg.Sling.PreviewStride, p.X, p.Y)
	}
}
