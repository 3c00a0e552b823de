package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkoshelev/tui-survivor/internal/config"
)

var flagWorldsConfig string

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Show the world catalog",
	Long: `List every world in the catalog with its rounds, difficulty and
unlocked mechanics.

Examples:
  survivor worlds
  survivor worlds --config ./my-worlds.yaml`,
	Args: cobra.NoArgs,
	Run:  runWorlds,
}

func init() {
	worldsCmd.Flags().StringVar(&flagWorldsConfig, "config", "", "Path to custom world catalog YAML")
}

func runWorlds(cmd *cobra.Command, args []string) {
	catalog, err := config.Load(flagWorldsConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World catalog:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, w := range catalog.Worlds {
		if len(w.Name) > maxNameLen {
			maxNameLen = len(w.Name)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-6s  %-10s  %-4s  %s\n", "#", maxNameLen, "Name", "Rounds", "Difficulty", "Boss", "Hazards")
	fmt.Printf("  %-3s  %-*s  %-6s  %-10s  %-4s  %s\n", "-", maxNameLen, "----", "------", "----------", "----", "-------")

	// Print worlds
	for _, w := range catalog.Worlds {
		boss := "-"
		if w.BossUnlocked {
			boss = "yes"
		}
		hazards := "-"
		if w.HazardsUnlocked {
			hazards = "yes"
		}
		fmt.Printf("  %-3d  %-*s  %-6d  x%-9g  %-4s  %s\n", w.Index, maxNameLen, w.Name, w.TotalRounds, w.DifficultyMultiplier, boss, hazards)
	}

	fmt.Println()
	fmt.Printf("Endless mode begins after world %d (difficulty +%g%% per round).\n",
		catalog.MaxWorld(), catalog.Endless.GrowthPerRound*100)
}
