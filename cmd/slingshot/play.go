package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
	"github.com/vovakirdan/tui-slingshot/internal/platform/tui"
	"github.com/vovakirdan/tui-slingshot/internal/sound"
)

var (
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start playing from the given level, or pick one from a list.

Controls:
  Mouse drag  - Pull the projectile back, release to launch
  Enter       - Next level (after a win)
  R           - Restart the level
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - One extra projectile, larger grab radius, longer sling
  normal - Level defaults
  hard   - One projectile less, smaller grab radius, weaker sling

Examples:
  slingshot play
  slingshot play 01-classic
  slingshot play 03-watchtower --difficulty hard --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the game and returns once it ends. Resources are released by
// deferred calls, so callers may exit after it returns.
func play(args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	gameCfg := config.ApplyPreset(loadConfig(), preset)
	lvls := loadLevels()

	start := 0
	if len(args) == 1 {
		start = levels.Index(lvls, args[0])
		if start < 0 {
			return fmt.Errorf("%w: %q (run 'slingshot levels' to see available levels)", levels.ErrLevelNotFound, args[0])
		}
	}

	logger, closeLog, err := tui.NewLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if len(args) == 0 {
		start, err = tui.RunLevelSelector(lvls, width, height)
		if err != nil {
			return err
		}
		if start < 0 {
			return nil
		}
	}

	player := openPlayer(logger)
	defer player.Close()

	game := slingshot.New(slingshot.Options{
		Config:           gameCfg,
		Levels:           lvls,
		Start:            start,
		ExtraProjectiles: config.ExtraProjectiles(preset),
	})

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	logger.Info("starting", "level", lvls[start].ID, "difficulty", preset, "fps", flagFPS)

	if err := tui.Run(game, cfg, logger, player); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openPlayer returns the speaker when sound is enabled and available.
func openPlayer(logger *log.Logger) sound.Player {
	if !flagSound {
		return sound.Silent{}
	}
	sp, err := sound.NewSpeaker(flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return sound.Silent{}
	}
	return sp
}

