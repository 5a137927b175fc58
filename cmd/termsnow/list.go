package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnow/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenes",
	Long:  "Display all registered scenes with their IDs and titles.",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes registered.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()
	for _, s := range scenes {
		fmt.Printf("  %-12s %s\n", s.ID, s.Title)
	}
	fmt.Println()
	fmt.Println("Run 'termsnow watch <id>' to watch a scene.")
}
