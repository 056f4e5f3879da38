package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any levels found in the --levels directory.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	lvls := loadLevels()

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Targets", "Shots", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "-------", "-----", "----")

	for _, l := range lvls {
		shots := "-"
		if n := len(l.Projectiles); n > 0 {
			shots = fmt.Sprintf("%d", n)
		}
		source := ""
		if l.FilePath != "" {
			source = "  (" + l.FilePath + ")"
		}
		fmt.Printf("  %-*s  %-7d  %-5s  %s%s\n", maxIDLen, l.ID, l.TargetCount(), shots, l.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'slingshot play <id>' to play a level.")
}
