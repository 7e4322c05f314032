package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drop-catch/internal/platform/tui"
	"github.com/vovakirdan/drop-catch/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Drop Catch",
	Long: `Start a Drop Catch game. The round starts when you press Enter or
click the start button, and lasts until the countdown runs out.

Controls:
  Mouse click  - Collect a drop
  Enter/Space  - Start a round
  R            - Reset the round
  P/Esc        - Pause
  B            - Leave (when no round is running)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer rounds, gentler ramp
  normal - Classic tuning
  hard   - Faster start, steeper obstacle ramp
  fixed  - No escalation, cadence stays at its initial value

Examples:
  dropcatch play
  dropcatch play dropcatch_fixed
  dropcatch play --difficulty hard
  dropcatch play --config ./my-drops.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "dropcatch"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dropcatch list' to see available modes.")
		os.Exit(1)
	}

	cleanup, err := setupGame(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	result, runErr := tui.Run(game, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if result.State.GameOver {
		fmt.Printf("Final score: %d\n", result.State.Score)
	}
}
