// termsnow is a terminal snowfall simulator.
//
// Usage:
//
//	termsnow list              - List available scenes
//	termsnow watch <scene>     - Watch a scene
//	termsnow menu              - Start the interactive scene picker
//	termsnow serve             - Start SSH server for remote watching
//	termsnow sessions <scene>  - Show recorded watch sessions
//
// Global flags:
//
//	--fps <rate>    - Override the scene frame rate (default: from config)
//	--seed <value>  - Set RNG seed for reproducible snowfall
//	--db <path>     - Set database path (default: ~/.termsnow/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/termsnow/internal/scenes/snow"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnow",
	Short: "termsnow - Let it snow in your terminal",
	Long: `termsnow renders an animated snowfall directly in your terminal,
locally or served over SSH.

Available commands:
  list      - Show all available scenes
  watch     - Watch a specific scene
  menu      - Interactive scene picker
  serve     - Start SSH server for remote watching
  sessions  - View recorded watch sessions

Examples:
  termsnow list
  termsnow watch classic
  termsnow watch blizzard --fps 30
  termsnow menu
  termsnow serve --ssh :2222
  termsnow sessions classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use scene frame rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termsnow/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}
