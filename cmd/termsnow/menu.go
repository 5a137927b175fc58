package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnow/internal/core"
	"github.com/vovakirdan/termsnow/internal/platform/tui"
	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive scene picker",
	Long: `Open the interactive picker to browse scenes and watch sessions.

Navigate with the arrow keys, press Enter to watch a scene,
Tab to browse recorded sessions, and Q to quit.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := 24
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Loop: picker -> scene -> picker, until the user quits.
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}

		if result.Quit {
			return
		}

		cfg = result.Config // Keep resized dimensions across iterations

		if result.WantsSessions {
			goingBack, boardErr := tui.RunSessionBoard(store, cfg.ScreenW, cfg.ScreenH)
			if boardErr != nil {
				fmt.Fprintf(os.Stderr, "Error showing sessions: %v\n", boardErr)
				os.Exit(1)
			}
			if !goingBack {
				return
			}
			continue
		}

		if result.SceneID == "" {
			return
		}

		scene, createErr := registry.Create(result.SceneID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", createErr)
			os.Exit(1)
		}

		watchCfg := cfg
		watchCfg.Seed = flagSeed
		if watchCfg.Seed == 0 {
			watchCfg.Seed = time.Now().UnixNano()
		}

		if runErr := tui.Run(scene, store, watchCfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
			os.Exit(1)
		}
	}
}
