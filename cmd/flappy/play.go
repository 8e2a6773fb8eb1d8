package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start a run straight away.

Controls:
  Space/Up/W     - Flap
  P/Esc          - Pause
  R / click      - Restart (after game over)
  B/Esc          - Leave (when paused or after game over)
  Ctrl+S         - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Wider gaps, slower scrolling, more time between obstacles
  normal - The config as written
  hard   - Narrower gaps, faster scrolling, obstacles closer together

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml --sound
  flappy play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sounds := startSound(flagSound)
	if sounds != nil {
		defer sounds.Cleanup()
	}

	game := flappy.New(cfg)
	if sounds != nil {
		game.SetSounds(sounds)
	}

	_, err = tui.Run(game, store, terminalRuntime())
	return err
}
