package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start at the title menu.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game (B or Esc when paused or over) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var sounds flappy.Sounds
	if m := startSound(flagSound); m != nil {
		defer m.Cleanup()
		sounds = m
	}
	newGame := gameFactory(cfg, sounds)
	meta := newGame()

	rc := terminalRuntime()
	for {
		result, err := tui.RunMenu(store, meta.ID(), rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, meta.ID(), meta.Title(), rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			run := rc
			if run.Seed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			goBack, err := tui.Run(newGame(), store, run)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
