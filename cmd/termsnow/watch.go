package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnow/internal/config"
	"github.com/vovakirdan/termsnow/internal/core"
	"github.com/vovakirdan/termsnow/internal/platform/tui"
	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/scenes/snow"
	"github.com/vovakirdan/termsnow/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene>",
	Short: "Watch a scene",
	Long: `Start watching the specified scene.

Controls:
  P          - Pause/resume
  R          - Restart with a new seed
  D          - Toggle timing overlay
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Preset options:
  calm     - Sparse, slow snow with no wind gusts
  classic  - The default snowfall
  blizzard - Dense, fast snow with frequent gusts

Examples:
  termsnow watch classic
  termsnow watch classic --preset calm
  termsnow watch blizzard
  termsnow watch classic --config ./my-snow.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	watchCmd.Flags().StringVar(&flagPreset, "preset", "", "Scene preset: calm, classic, blizzard")
}

func runWatch(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'termsnow list' to see available scenes.")
		os.Exit(1)
	}

	// Validate preset early
	if flagPreset != "" {
		if _, ok := config.ParsePreset(flagPreset); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", flagPreset)
			os.Exit(1)
		}
	}

	// Validate the config file early; a broken explicit path is fatal,
	// the scene itself falls back silently otherwise.
	loaded, err := config.LoadSnow(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snow.SetConfigPath(flagConfig)
	snow.SetPreset(flagPreset)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := loaded.Display.FrameRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Create scene instance
	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the scene still works
		store = nil
	}

	// Run the scene
	runErr := tui.Run(scene, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
