package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/platform/tui"
	"github.com/vovakirdan/match3/internal/registry"
	"github.com/vovakirdan/match3/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: match3).

Modes:
  match3          - Limited moves, chase a high score
  match3_endless  - No move limit, more token kinds as your score grows

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Pick a token, then an adjacent one to swap
  H            - Show a hint
  Esc/B        - Drop the picked token
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 token kinds, 40 moves
  normal - 6 token kinds, 30 moves
  hard   - 7 token kinds, 20 moves
  fixed  - Config as-is, no progression

Examples:
  match3 play
  match3 play match3_endless
  match3 play --difficulty hard
  match3 play --layout shapes
  match3 play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'match3 list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), palette()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
