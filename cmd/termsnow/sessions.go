package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnow/internal/platform/tui"
	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/storage"
)

var (
	flagBoard    bool
	flagSessions int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [scene]",
	Short: "Show recorded watch sessions",
	Long: `Print the watch session history for a scene, newest first.

With no scene argument, prints sessions for every registered scene.
Use --board for the interactive table view.

Examples:
  termsnow sessions
  termsnow sessions classic
  termsnow sessions classic --limit 20
  termsnow sessions --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive session board")
	sessionsCmd.Flags().IntVar(&flagSessions, "limit", 10, "Number of sessions to show per scene")
}

func runSessions(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, boardErr := tui.RunSessionBoard(store, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing session board: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	var scenes []registry.SceneInfo
	if len(args) == 1 {
		sceneID := args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
			os.Exit(1)
		}
		for _, s := range registry.List() {
			if s.ID == sceneID {
				scenes = append(scenes, s)
			}
		}
	} else {
		scenes = registry.List()
	}

	for _, s := range scenes {
		printSceneSessions(store, s)
	}
}

// printSceneSessions prints one scene's session history and totals.
func printSceneSessions(store *storage.Store, scene registry.SceneInfo) {
	sessions, err := store.RecentSessions(scene.ID, flagSessions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sessions for %s: %v\n", scene.ID, err)
		return
	}

	fmt.Printf("%s (%s)\n", scene.Title, scene.ID)

	if len(sessions) == 0 {
		fmt.Println("  No sessions recorded yet.")
		fmt.Println()
		return
	}

	fmt.Printf("  %-18s %-10s %-10s %s\n", "When", "Duration", "Frames", "Gusts")
	for _, entry := range sessions {
		fmt.Printf("  %-18s %-10s %-10d %d\n",
			entry.CreatedAt.Format("Jan 02 15:04"),
			formatSeconds(entry.Seconds),
			entry.Frames,
			entry.DriftChanges,
		)
	}

	total, err := store.TotalSeconds(scene.ID)
	if err == nil {
		fmt.Printf("  Total watched: %s", formatSeconds(total))
		if longest, lerr := store.LongestSession(scene.ID); lerr == nil {
			fmt.Printf("  |  Longest: %s", formatSeconds(longest))
		}
		fmt.Println()
	}
	fmt.Println()
}

// formatSeconds renders a duration in seconds as m:ss.
func formatSeconds(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
