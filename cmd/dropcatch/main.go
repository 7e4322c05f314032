// dropcatch is a terminal "catch the falling drop" arcade game.
//
// Usage:
//
//	dropcatch list            - List game modes
//	dropcatch play [mode]     - Play a mode (default: dropcatch)
//	dropcatch menu            - Pick a mode interactively
//	dropcatch serve           - Start SSH server for remote play
//	dropcatch config          - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible spawns
//	--log <path>    - Write game events to a log file
//	--sound         - Play sound cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/drop-catch/internal/games/dropcatch"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagSound   bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropcatch",
	Short: "Drop Catch - click the falling drops before they land",
	Long: `Drop Catch is a timed terminal arcade game. Drops fall down the field;
click them with the mouse before they land. Big drops are worth more and
make the game faster, storm obstacles cost points.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  config   - Print the default tuning YAML

Examples:
  dropcatch play
  dropcatch play dropcatch_fixed
  dropcatch play --difficulty hard --sound
  dropcatch menu --log ./dropcatch.log
  dropcatch serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every spawn and collection")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
