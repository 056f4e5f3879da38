// slingshot is a terminal slingshot game: drag the projectile back with the
// mouse, let go, and knock out every target in the scene.
//
// Usage:
//
//	slingshot play [level-id]  - Play a level (level picker when omitted)
//	slingshot levels           - List available levels
//	slingshot trace            - Print launch force and trajectory for a pull
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Game config YAML
//	--levels <dir>      - Directory with extra level files
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagLevelsDir string
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slingshot",
	Short: "Slingshot - knock down targets in your terminal",
	Long: `Slingshot is a terminal physics game. Pull the projectile back from
the sling with the mouse, release it, and destroy every target.

Available commands:
  play     - Play a level
  levels   - Show all available levels
  trace    - Inspect the launch for a given pull

Examples:
  slingshot play
  slingshot play 02-kings-keep --difficulty hard
  slingshot levels --levels ./my-levels
  slingshot trace --pull-x -80 --pull-y 40`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		flagConfig = config.EnvOr(flagConfig, config.EnvConfig)
		flagLevelsDir = config.EnvOr(flagLevelsDir, config.EnvLevels)
		flagLogFile = config.EnvOr(flagLogFile, config.EnvLog)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML (env "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files (env "+config.EnvLevels+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env "+config.EnvLog+")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(traceCmd)
}

// loadConfig loads the game config. A broken config file is reported and
// replaced by the built-in defaults.
func loadConfig() config.SlingshotConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultSlingshotConfig()
	}
	return cfg
}

// loadLevels returns the built-in levels merged with the levels directory.
func loadLevels() []levels.Level {
	lvls, err := levels.Catalog(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load levels: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no levels available")
		os.Exit(1)
	}
	return lvls
}
