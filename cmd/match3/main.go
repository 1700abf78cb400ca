// match3 is a terminal match-3 puzzle: swap adjacent tokens to line up three
// or more, build special shapes and chain cascades.
//
// Usage:
//
//	match3 list               - List game modes
//	match3 play [mode]        - Play a mode (default: match3)
//	match3 menu               - Pick modes interactively
//	match3 serve              - Start SSH server for remote play
//	match3 scores [mode]      - Show high scores
//	match3 inspect <board>    - Analyse a board: runs, shapes, legal moves
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.match3/scores.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--layout <name>      - Start from a built-in layout or a layout YAML file
//	--mono               - Disable colors
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagMono       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "match3"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a tile-matching puzzle in your terminal",
	Long: `Match-3 is a terminal tile-matching puzzle. Swap two adjacent tokens
to line up three or more of a kind. Four in a row, five in a row, squares,
L and T shapes leave a wild token behind; swap a wild with any token to
clear every token of that kind.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  inspect  - Analyse a board from a file or layout

Examples:
  match3 play
  match3 play match3_endless --difficulty hard
  match3 play --layout shapes --seed 42
  match3 menu
  match3 serve --ssh :2222
  match3 inspect stuck`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		match3.SetConfigPath(flagConfig)
		match3.SetDifficultyPreset(flagDifficulty)
		match3.SetLayout(flagLayout)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLayout, "layout", "", "Starting layout: built-in name or YAML file")
	pf.BoolVar(&flagMono, "mono", false, "Disable colors")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
}

// palette returns the screen palette selected by --mono.
func palette() tui.Palette {
	if flagMono {
		return tui.MonoPalette()
	}
	return tui.DefaultPalette()
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, ok := terminalSize(); ok {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
